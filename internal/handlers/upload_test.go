package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/apperrors"
)

func uploadContext(t *testing.T, contentType string, body *bytes.Buffer) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPut, "/profile/update", body)
	req.Header.Set("Content-Type", contentType)
	c.Request = req
	return c
}

func TestSaveUploadMissingFileIsNotAnError(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("fullname", "Stu"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	mw.Close()

	c := uploadContext(t, mw.FormDataContentType(), &body)
	path, name, err := saveUpload(c, "resume", t.TempDir())
	if err != nil {
		t.Fatalf("saveUpload: %v", err)
	}
	if path != "" || name != "" {
		t.Errorf("got path %q name %q, want empty", path, name)
	}
}

func TestSaveUploadRejectsMalformedMultipart(t *testing.T) {
	body := bytes.NewBufferString("this is not a multipart body")
	c := uploadContext(t, "multipart/form-data; boundary=deadbeef", body)

	_, _, err := saveUpload(c, "resume", t.TempDir())
	if err == nil {
		t.Fatal("saveUpload accepted a malformed multipart body")
	}
	if de := apperrors.AsDomain(err); de.Type != apperrors.ErrTypeInvalidInput {
		t.Errorf("error type = %s, want %s", de.Type, apperrors.ErrTypeInvalidInput)
	}
}

func TestSaveUploadWritesFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("resume", "cv.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write([]byte("%PDF-1.4 resume bytes"))
	mw.Close()

	dir := t.TempDir()
	c := uploadContext(t, mw.FormDataContentType(), &body)
	path, name, err := saveUpload(c, "resume", dir)
	if err != nil {
		t.Fatalf("saveUpload: %v", err)
	}
	if name != "cv.pdf" {
		t.Errorf("original name = %q, want cv.pdf", name)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path %q not under upload dir %q", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
