package domain

import "errors"

var (
	ErrDocumentNotFound    = errors.New("reference document not found")
	ErrDocumentUnavailable = errors.New("reference document unavailable")
	ErrUnsupportedStore    = errors.New("unsupported document store provider")
)
