package main

import (
	"time"

	"github.com/fazal-dev56/CS50-FindMyBud/config"
	"github.com/fazal-dev56/CS50-FindMyBud/database"
	routes "github.com/fazal-dev56/CS50-FindMyBud/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Sessions are signed with APP_SECRET, so they survive restarts.
	store := cookie.NewStore([]byte(config.APP_SECRET))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0, // session cookie, not permanent
	})
	r.Use(sessions.Sessions("findmybud_session", store))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
