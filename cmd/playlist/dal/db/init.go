package db

import (
	"gorm.io/gorm"

	"vidtube.com/pkg/database"
)

var DB *gorm.DB

// Init init DB
func Init() {
	DB = database.Open()
}
