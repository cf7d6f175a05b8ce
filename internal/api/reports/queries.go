package reports

import (
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"

	"gorm.io/gorm"
)

func listQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&reports.Report{}).
		Preload("User").
		Order("created_at DESC, id DESC")
}

func ownerReportsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return listQuery(db).Where("user_id = ?", userID)
}
