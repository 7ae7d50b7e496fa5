package dal

import "vidtube.com/cmd/playlist/dal/db"

func Init() {
	db.Init()
}
