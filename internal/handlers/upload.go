package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop-backend/internal/apperrors"
)

// saveUpload writes the named multipart file to the upload directory under a
// unique name and returns its path plus the original filename. A missing
// file field is not an error: uploads are optional on profile updates. A
// multipart body that fails to parse is.
func saveUpload(c *gin.Context, field, uploadDir string) (path, originalName string, err error) {
	file, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", "", nil
	}
	if err != nil {
		return "", "", apperrors.InvalidInput("Invalid file upload.", err)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", field, uuid.NewString(), filepath.Ext(file.Filename))
	path = filepath.Join(uploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", "", fmt.Errorf("save upload: %w", err)
	}
	return path, file.Filename, nil
}
