package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func (db *DB) DSN() string {
	if db.URL != "" {
		return db.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

func (db *DB) GormConnect() (*gorm.DB, error) {
	return gorm.Open(postgres.Open(db.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}
