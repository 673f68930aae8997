// Package domain defines the core business entities for radar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - AnswerSet: questionnaire answers keyed by field name
//   - Verdict: a zone with its headline, signals and recommendation
//   - Entities: amounts and cities pulled out of free text
//   - AppSettings: LLM and normaliser configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
