package reports

import (
	"time"

	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/users"
)

const (
	TypeLost  = "lost"
	TypeFound = "found"

	StatusOpen     = "open"
	StatusResolved = "resolved"
)

// ValidType reports whether mode is one of the two report modes.
func ValidType(mode string) bool {
	return mode == TypeLost || mode == TypeFound
}

type Report struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;index"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE"`

	Type         string `gorm:"type:varchar(10);not null"`
	Brand        string
	Model        string
	Part         string
	Color        string
	EventDate    string
	LocationText string
	Description  string

	// Stored filenames under the upload dir, never raw bytes.
	Photo1 *string
	Photo2 *string

	Status string `gorm:"type:varchar(10);not null;default:'open'"`

	CreatedAt time.Time
}
