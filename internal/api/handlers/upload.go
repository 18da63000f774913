package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	apperrors "employee-records/internal/errors"

	"github.com/gin-gonic/gin"
)

// uploadField is the multipart field carrying the CSV file
const uploadField = "file"

// uploadedFile returns the file posted under the "file" field.
// A part without a filename is parsed by net/http as a plain value, which is how an
// empty file input arrives.
func uploadedFile(c *gin.Context, maxBytes int64) (*multipart.FileHeader, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.ErrFileTooLarge
		}
		return nil, apperrors.ErrNoFileSupplied
	}

	if files := form.File[uploadField]; len(files) > 0 {
		if files[0].Filename == "" {
			return nil, apperrors.ErrEmptyFilename
		}
		return files[0], nil
	}
	if _, ok := form.Value[uploadField]; ok {
		return nil, apperrors.ErrEmptyFilename
	}
	return nil, apperrors.ErrNoFileSupplied
}

// uploadNotice is the user-facing text for an upload failure
func uploadNotice(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoFileSupplied):
		return "No file part"
	case errors.Is(err, apperrors.ErrEmptyFilename):
		return "No selected file"
	case errors.Is(err, apperrors.ErrUnsupportedFormat):
		return "Invalid file format, please upload a CSV."
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return "The uploaded file is too large."
	default:
		return "Could not read the CSV file: " + err.Error()
	}
}
