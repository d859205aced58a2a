package upload

import "errors"

var (
	ErrUploaderNotFound = errors.New("uploader not found")
	ErrForbidden        = errors.New("uploader role not allowed")
	ErrEmptyFile        = errors.New("empty file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidMimeType  = errors.New("invalid mime type")
	ErrFileNotFound     = errors.New("file not found")
)
