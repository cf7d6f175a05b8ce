package reports

import (
	"time"

	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/access"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"
)

type ReportDTO struct {
	ID           uint      `json:"id"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Part         string    `json:"part"`
	Color        string    `json:"color"`
	EventDate    string    `json:"event_date"`
	LocationText string    `json:"location_text"`
	Description  string    `json:"description"`
	Photo1       *string   `json:"photo1,omitempty"`
	Photo2       *string   `json:"photo2,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`

	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

type ReportDetailDTO struct {
	ReportDTO
	UserEmail    string   `json:"user_email"`
	Capabilities []string `json:"capabilities"`
}

func toReportDTO(r reports.Report) ReportDTO {
	return ReportDTO{
		ID:           r.ID,
		Type:         r.Type,
		Brand:        r.Brand,
		Model:        r.Model,
		Part:         r.Part,
		Color:        r.Color,
		EventDate:    r.EventDate,
		LocationText: r.LocationText,
		Description:  r.Description,
		Photo1:       r.Photo1,
		Photo2:       r.Photo2,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UserID:       r.UserID,
		UserName:     r.User.Name,
	}
}

func toReportDetailDTO(r reports.Report, requesterID uint) ReportDetailDTO {
	return ReportDetailDTO{
		ReportDTO:    toReportDTO(r),
		UserEmail:    r.User.Email,
		Capabilities: access.CapabilitiesFor(requesterID, r),
	}
}

func toReportDTOs(rows []reports.Report) []ReportDTO {
	out := make([]ReportDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReportDTO(r))
	}
	return out
}
