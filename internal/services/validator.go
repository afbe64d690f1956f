package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/octet-stream":                                                true,
}

// ValidateUpload checks an uploaded file against the extension allow-list
// before any processing happens. The declared content type is checked only
// when the client sent one; browsers frequently omit or generalize it.
func ValidateUpload(filename, contentType string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %q. Only PDF and DOC/DOCX files are allowed", ErrInvalidFileType, ext)
	}

	if contentType != "" {
		mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
		if !allowedContentTypes[strings.ToLower(mediaType)] {
			return fmt.Errorf("%w: unsupported content type %q", ErrInvalidFileType, mediaType)
		}
	}

	return nil
}
