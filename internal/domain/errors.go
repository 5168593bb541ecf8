package domain

import "errors"

var (
	// ErrInvalidInput is returned when a traversal root or an option value is unusable
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse is returned when a scanned source file is not valid Python
	ErrParse = errors.New("syntax error")

	// ErrConfiguration is returned for unsupported hosting platforms
	ErrConfiguration = errors.New("configuration error")

	// ErrNoCommonRoot is returned when two paths share no prefix
	ErrNoCommonRoot = errors.New("no common root path")

	// ErrVersionNotFound is returned when no __version__ assignment can be bumped
	ErrVersionNotFound = errors.New("version string not found")
)
