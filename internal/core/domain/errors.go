package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown provider or file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnsupportedDomain indicates an analysis domain with no analyzer.
	ErrUnsupportedDomain = errors.New("unsupported domain")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Verdicts are produced by the rule-based analyzers only.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmptyResponse indicates the LLM returned no usable text.
	ErrEmptyResponse = errors.New("empty LLM response")

	// ErrRateLimited indicates the local request budget for the LLM is spent.
	ErrRateLimited = errors.New("rate limited")
)
