package dal

import "vidtube.com/cmd/tweet/dal/db"

func Init() {
	db.Init()
}
