package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fazal-dev56/CS50-FindMyBud/config"
	"github.com/fazal-dev56/CS50-FindMyBud/database"
	authapi "github.com/fazal-dev56/CS50-FindMyBud/internal/api/auth"
	routes "github.com/fazal-dev56/CS50-FindMyBud/internal/app/http"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/reports"
	"github.com/fazal-dev56/CS50-FindMyBud/internal/domain/users"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.APP_SECRET = "test-secret"
	config.BASE_URL = "http://localhost:8080"
	config.UPLOAD_DIR = t.TempDir()
	config.SMTP_FROM = ""
	config.SMTP_PASSWORD = ""
	config.SMTP_HOST = ""

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "findmybud.db")), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&users.User{}, &reports.Report{}))
	database.DB = db

	r := gin.New()
	r.Use(sessions.Sessions("findmybud_session", cookie.NewStore([]byte(config.APP_SECRET))))
	routes.RegisterRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(name, email, password string) map[string]string {
	return map[string]string{
		"name":         name,
		"email":        email,
		"password":     password,
		"confirmation": password,
	}
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody("A", "a@x.com", "pw"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user users.User
	require.NoError(t, database.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.False(t, user.IsVerified)

	// Correct password, but the account is not verified yet.
	w = doJSON(r, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "pw"}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	token, err := authapi.SignEmailToken("a@x.com", []byte(config.APP_SECRET), time.Hour)
	require.NoError(t, err)
	w = doJSON(r, http.MethodGet, "/verify/"+token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.True(t, user.IsVerified)

	w = doJSON(r, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	loginCookies := w.Result().Cookies()
	require.NotEmpty(t, loginCookies)

	w = doJSON(r, http.MethodGet, "/my-reports", nil, loginCookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/logout", nil, loginCookies)
	require.Equal(t, http.StatusOK, w.Code)
	loggedOutCookies := w.Result().Cookies()

	w = doJSON(r, http.MethodGet, "/my-reports", nil, loggedOutCookies)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	// Missing name
	w := doJSON(r, http.MethodPost, "/register", map[string]string{
		"email": "a@x.com", "password": "pw", "confirmation": "pw",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Password and confirmation differ
	w = doJSON(r, http.MethodPost, "/register", map[string]string{
		"name": "A", "email": "a@x.com", "password": "pw", "confirmation": "other",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&users.User{}).Count(&count)
	require.Zero(t, count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/register", registerBody("First", "dup@x.com", "pw"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/register", registerBody("Second", "dup@x.com", "pw2"), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// First user's data unaffected.
	var user users.User
	require.NoError(t, database.DB.Where("email = ?", "dup@x.com").First(&user).Error)
	require.Equal(t, "First", user.Name)

	var count int64
	database.DB.Model(&users.User{}).Where("email = ?", "dup@x.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestLoginInvalidCredentialsShape(t *testing.T) {
	r := setupRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, database.DB.Create(&users.User{
		Name: "A", Email: "a@x.com", PasswordHash: string(hash), IsVerified: true,
	}).Error)

	unknown := doJSON(r, http.MethodPost, "/login", map[string]string{"email": "ghost@x.com", "password": "pw"}, nil)
	wrongPw := doJSON(r, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "nope"}, nil)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// Same body both ways: the response must not reveal which part failed.
	require.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestConcurrentRegisterSingleWinner(t *testing.T) {
	r := setupRouter(t)

	const n = 2
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doJSON(r, http.MethodPost, "/register", registerBody(fmt.Sprintf("U%d", i), "race@x.com", "pw"), nil)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, code := range codes {
		if code == http.StatusOK {
			wins++
		}
	}
	require.Equal(t, 1, wins, "exactly one registration must win, got codes %v", codes)

	var count int64
	database.DB.Model(&users.User{}).Where("email = ?", "race@x.com").Count(&count)
	require.EqualValues(t, 1, count)
}
