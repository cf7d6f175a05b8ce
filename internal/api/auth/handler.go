package auth

import (
	"fmt"
	"net/http"

	"github.com/fazal-dev56/CS50-FindMyBud/config"
	"github.com/fazal-dev56/CS50-FindMyBud/database"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/users"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func Register(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		Phone        string `json:"phone"`
		Password     string `json:"password" binding:"required"`
		Confirmation string `json:"confirmation" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all the required fields"})
		return
	}

	if input.Password != input.Confirmation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords must match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := users.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		IsVerified:   false,
	}

	// The unique index on email settles duplicate registrations; the loser
	// of a concurrent race lands here too.
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	}

	token, err := SignEmailToken(user.Email, []byte(config.APP_SECRET), VerificationTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create verification token"})
		return
	}
	link := fmt.Sprintf("%s/verify/%s", config.BASE_URL, token)

	if err := SendVerificationEmail(user.Email, link); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification email"})
		return
	}

	logrus.WithField("email", user.Email).Info("User registered, verification pending")
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful! Please check your email to verify your account."})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide email and password"})
		return
	}

	session := sessions.Default(c)
	session.Clear()

	var user users.User
	err := database.DB.Where("email = ?", input.Email).First(&user).Error
	if err != nil {
		// Same body as a password mismatch, so the response does not
		// reveal whether the email exists.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email before logging in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not establish session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Welcome!"})
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}
