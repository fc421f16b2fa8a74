package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates the table for the given model key, or all tables when key is empty
// AutoMigrate 迁移指定模型的表，key 为空时迁移所有表
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "User":
		return db.AutoMigrate(User{})
	case "Note":
		return db.AutoMigrate(Note{})
	case "":
		return db.AutoMigrate(User{}, Note{})
	}
	return nil
}
