package services

import "github.com/pkg/errors"

var (
	ErrNoResume          = errors.New("no resume uploaded")
	ErrNoSkills          = errors.New("resume has no recognised skills")
	ErrInvalidStatus     = errors.New("invalid job status")
	ErrUnsupportedExport = errors.New("unsupported export format")
)
