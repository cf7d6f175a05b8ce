package database

import (
	"github.com/fazal-dev56/CS50-FindMyBud/config"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/users"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	path := config.DB_PATH
	if path == "" {
		logrus.Fatal("DB_PATH not set")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open database")
	}

	DB = db

	// Foreign keys are off by default in sqlite.
	if err := DB.Exec(`PRAGMA foreign_keys = ON;`).Error; err != nil {
		logrus.WithError(err).Fatal("Failed to enable foreign keys")
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&reports.Report{},
	); err != nil {
		logrus.WithError(err).Fatal("AutoMigrate error")
	}

	logrus.WithField("path", path).Info("Connected and migrated successfully")
}
