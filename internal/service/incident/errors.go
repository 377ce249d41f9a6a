package incident

import "errors"

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrFileNotFound     = errors.New("incident file not found")
	ErrTitleRequired    = errors.New("incident title is required")
	ErrInvalidStatus    = errors.New("invalid incident status")
	ErrInvalidFileData  = errors.New("file content is not valid base64")
)
