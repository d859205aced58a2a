package complaint

import "errors"

var (
	ErrBlankFields       = errors.New("subject, description and entity name are required")
	ErrUserNotFound      = errors.New("user not found")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrInvalidType       = errors.New("invalid complaint type")
	ErrInvalidStatus     = errors.New("invalid complaint status")
	ErrAdminOnly         = errors.New("admin access required")
)
