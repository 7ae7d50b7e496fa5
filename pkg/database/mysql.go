package database

import (
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/cmd/model"
	"vidtube.com/config"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Open 打开共享的mysql连接, 多个dal共用同一个句柄
func Open() *gorm.DB {
	once.Do(open)
	return db
}

func open() {
	dsn := config.ConfigInfo.Mysql.Username + ":" + config.ConfigInfo.Mysql.Password +
		"@tcp(" + config.ConfigInfo.Mysql.Addr + ")/" + config.ConfigInfo.Mysql.Database +
		"?charset=utf8mb4&parseTime=True&loc=Local"
	var err error
	db, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = migrate(); err != nil {
		panic(err)
	}
	logrus.Info("mysql connection initialized")
}

// migrate 建表并创建边表的组合唯一索引, 唯一索引是toggle原子性的前提
func migrate() error {
	return db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Like{},
		&model.Subscription{},
		&model.WatchRecord{},
	)
}
