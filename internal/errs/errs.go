// Package errs defines common error variables used across the application.
package errs

import "errors"

// Request errors.
var (
	// ErrRequestNil indicates that the download request is nil.
	ErrRequestNil = errors.New("request is nil")
	// ErrInvalidURL indicates that the url argument is empty.
	ErrInvalidURL = errors.New("invalid url argument")
	// ErrInvalidQuality indicates that the quality flag is not one of the supported tokens.
	ErrInvalidQuality = errors.New("invalid quality")
	// ErrInvalidFormat indicates that the format flag is not one of the supported containers.
	ErrInvalidFormat = errors.New("invalid format")
)

// Dependency errors.
var (
	// ErrBinaryNotFound indicates that the required binary was not found.
	ErrBinaryNotFound = errors.New("binary not found")
)

// Download errors.
var (
	// ErrDownloadCancelled indicates that the user declined the live clip confirmation.
	ErrDownloadCancelled = errors.New("download cancelled")
	// ErrDownloadFailed indicates that the downloader exited with a non-zero status.
	ErrDownloadFailed = errors.New("download failed")
	// ErrDownloadInterrupted indicates that the user interrupted a running download.
	ErrDownloadInterrupted = errors.New("download interrupted")
)
