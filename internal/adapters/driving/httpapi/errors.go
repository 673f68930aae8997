// Package httpapi exposes verdicts, normalisation and entity extraction
// as a small JSON API.
package httpapi

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("httpapi: analysis service is required")

// ErrMissingNormaliser is returned when the text normaliser is not provided.
var ErrMissingNormaliser = errors.New("httpapi: text normaliser is required")
