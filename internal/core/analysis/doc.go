// Package analysis holds the rule-based verdict engine.
//
// Every domain is described by a Profile: an ordered list of checks, a
// Policy that reduces the signal count to a zone, and fixed headline and
// recommendation texts per zone. A single generic Analyzer runs any
// profile, so adding a domain is a data change.
//
// Nothing in this package logs or returns errors from Analyze; every
// AnswerSet, however malformed, yields a verdict.
package analysis
