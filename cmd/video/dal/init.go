package dal

import "vidtube.com/cmd/video/dal/db"

func Init() {
	db.Init()
}
