package users

import (
	"net/http"

	"github.com/fazal-dev56/CS50-FindMyBud/config"
	"github.com/fazal-dev56/CS50-FindMyBud/database"
	authapi "github.com/fazal-dev56/CS50-FindMyBud/internal/api/auth"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// VerifyEmail confirms a registration link. Re-verifying an already verified
// user is a no-op, and a token for an email that no longer exists updates
// zero rows without complaint.
func VerifyEmail(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	email, err := authapi.ParseEmailToken(token, []byte(config.APP_SECRET))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification link is invalid or expired"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("email = ?", email).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully! You can now log in."})
}
