package services

import "errors"

// Stage errors drive the HTTP status mapping in the handler layer.
var (
	// ErrInvalidFileType marks uploads outside the PDF/DOC/DOCX allow-list.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrExtraction marks documents whose text could not be extracted.
	ErrExtraction = errors.New("extraction failed")

	// ErrStructuring marks failures of the structuring model: unavailable,
	// timed out, or malformed output.
	ErrStructuring = errors.New("structuring failed")
)
