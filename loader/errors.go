package loader

import "errors"

var (
	// ErrFormat is returned when the input does not follow the file grammar:
	// missing header, malformed triple line, non-integer field or wrong field count.
	ErrFormat = errors.New("loader: input file has wrong format")

	// ErrFileNotFound is returned when the input file does not exist or cannot be opened.
	ErrFileNotFound = errors.New("loader: file not found")
)
