package handler

import (
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/utils"
)

// uploadURLPrefix is where the router serves the upload directory from.
const uploadURLPrefix = "/static/uploads/"

// saveUpload persists a multipart file field under the upload directory
// with a random hex name plus the original extension, and returns the
// public URL path. A request without the field yields ("", nil) so
// callers can treat the upload as optional.
func saveUpload(c echo.Context, field, dir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Missing field or a non-multipart form: nothing to save.
		return "", nil
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name, err := utils.UploadFilename(fh.Filename)
	if err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return uploadURLPrefix + name, nil
}
