package reports

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/fazal-dev56/CS50-FindMyBud/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var allowedPhotoExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// savePhoto stores an uploaded photo under a server-generated key and
// returns the stored filename. The client-supplied name is never trusted:
// only its extension survives, checked against an allowlist.
func savePhoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(file.Filename)))
	if !allowedPhotoExt[ext] {
		return "", fmt.Errorf("unsupported photo type %q", ext)
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(config.UPLOAD_DIR, name)); err != nil {
		return "", err
	}
	return name, nil
}

// removePhoto deletes a stored photo file. Best effort: a report delete must
// not fail because its photo is already gone.
func removePhoto(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(config.UPLOAD_DIR, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("photo", name).Warn("Failed to remove photo file")
	}
}
