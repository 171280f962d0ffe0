package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"lead_intake_backend/platform/apperr"
)

// allowedExtensions is the fixed allow-list for resume uploads.
// Comparison is case-insensitive on the file extension only; the declared
// content type is never trusted.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// extensionContentTypes maps accepted extensions to the content type used
// when storing the blob.
var extensionContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateResume checks the original file name and content size against the
// upload policy. Each rejection reason gets its own message so callers can
// surface it to the submitter.
func ValidateResume(filename string, size, maxSize int64) error {
	if strings.TrimSpace(filename) == "" {
		return apperr.Validation("no filename provided")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return apperr.Validation(fmt.Sprintf(
			"file type %q not allowed; accepted: %s", ext, allowedExtensionList()))
	}

	if size > maxSize {
		return apperr.Validation(fmt.Sprintf(
			"file exceeds maximum size of %d MiB", maxSize/(1024*1024)))
	}

	return nil
}

// AllowedExtensions returns the accepted resume extensions, sorted.
func AllowedExtensions() []string {
	return []string{".doc", ".docx", ".pdf"}
}

func allowedExtensionList() string {
	return strings.Join(AllowedExtensions(), ", ")
}
