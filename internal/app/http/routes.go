package routes

import (
	authapi "github.com/fazal-dev56/CS50-FindMyBud/internal/api/auth"
	reportsapi "github.com/fazal-dev56/CS50-FindMyBud/internal/api/reports"
	usersapi "github.com/fazal-dev56/CS50-FindMyBud/internal/api/users"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Anyone can browse listings.
	r.GET("/", reportsapi.ListReports)
	r.GET("/verify/:token", usersapi.VerifyEmail)
	r.GET("/logout", authapi.Logout)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.SessionAuth())
	auth.GET("/report", reportsapi.ReportForm)
	auth.POST("/report", reportsapi.CreateReport)
	auth.GET("/report/:id", reportsapi.GetReport)
	auth.GET("/my-reports", reportsapi.ListMyReports)
	auth.POST("/report/:id/resolve", reportsapi.ResolveReport)
	auth.POST("/report/:id/delete", reportsapi.DeleteReport)
}
