package reports

import (
	"errors"
	"net/http"

	"github.com/fazal-dev56/CS50-FindMyBud/database"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/access"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Multipart bodies bypass the JSON sanitizer middleware, so text fields get
// the same treatment here.
var formPolicy = bluemonday.StrictPolicy()

var formFields = []string{"brand", "model", "part", "color", "date", "location_text", "description"}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET / and GET /my-reports
// ------------------------------
func ListReports(c *gin.Context) {
	var rows []reports.Report
	if err := listQuery(database.DB).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": toReportDTOs(rows)})
}

func ListMyReports(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var rows []reports.Report
	if err := ownerReportsQuery(database.DB, userID).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": toReportDTOs(rows)})
}

// ------------------------------
// GET /report?mode=lost|found
// ------------------------------
// The web client renders the submission form itself; this endpoint only
// validates the mode and describes the expected fields.
func ReportForm(c *gin.Context) {
	mode := c.DefaultQuery("mode", reports.TypeLost)
	if !reports.ValidType(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":   mode,
		"fields": formFields,
		"photos": []string{"photo1", "photo2"},
	})
}

// ------------------------------
// POST /report?mode=lost|found
// ------------------------------
func CreateReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	mode := c.DefaultQuery("mode", reports.TypeLost)
	if !reports.ValidType(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report type"})
		return
	}

	report := reports.Report{
		UserID:       userID,
		Type:         mode,
		Brand:        formPolicy.Sanitize(c.PostForm("brand")),
		Model:        formPolicy.Sanitize(c.PostForm("model")),
		Part:         formPolicy.Sanitize(c.PostForm("part")),
		Color:        formPolicy.Sanitize(c.PostForm("color")),
		EventDate:    formPolicy.Sanitize(c.PostForm("date")),
		LocationText: formPolicy.Sanitize(c.PostForm("location_text")),
		Description:  formPolicy.Sanitize(c.PostForm("description")),
		Status:       reports.StatusOpen,
	}

	for _, photo := range []struct {
		field string
		dest  **string
	}{
		{"photo1", &report.Photo1},
		{"photo2", &report.Photo2},
	} {
		file, err := c.FormFile(photo.field)
		if err != nil || file == nil || file.Filename == "" {
			continue
		}
		name, err := savePhoto(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save " + photo.field})
			return
		}
		*photo.dest = &name
	}

	if err := database.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully!",
		"report":  toReportDTO(report),
	})
}

// ------------------------------
// GET /report/:id
// ------------------------------
func GetReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	report, ok := findReport(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": toReportDetailDTO(report, userID)})
}

// ------------------------------
// POST /report/:id/resolve
// ------------------------------
func ResolveReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	report, ok := findReport(c)
	if !ok {
		return
	}

	if !access.CanManageReport(userID, report) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized action"})
		return
	}

	// Already-resolved reports stay resolved.
	if err := database.DB.Model(&reports.Report{}).
		Where("id = ?", report.ID).
		Update("status", reports.StatusResolved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report marked as resolved."})
}

// ------------------------------
// POST /report/:id/delete
// ------------------------------
func DeleteReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	report, ok := findReport(c)
	if !ok {
		return
	}

	if !access.CanManageReport(userID, report) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized action"})
		return
	}

	if err := database.DB.Delete(&reports.Report{}, report.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	if report.Photo1 != nil {
		removePhoto(*report.Photo1)
	}
	if report.Photo2 != nil {
		removePhoto(*report.Photo2)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully."})
}

func findReport(c *gin.Context) (reports.Report, bool) {
	var report reports.Report
	err := database.DB.Preload("User").First(&report, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		}
		return reports.Report{}, false
	}
	return report, true
}
