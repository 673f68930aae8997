package analysis

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/radar/internal/core/domain"
)

// Check inspects an AnswerSet and reports at most one signal.
type Check func(domain.AnswerSet) (domain.Signal, bool)

// NamedCheck pairs a check with the answer field it reads.
type NamedCheck struct {
	Field string
	Check Check
}

// NoopCheck never fires. It holds the slot of a field that is collected
// but not scored yet.
func NoopCheck(domain.AnswerSet) (domain.Signal, bool) {
	return "", false
}

// containsAny reports whether the lowercased value contains any marker.
func containsAny(value string, markers ...string) bool {
	lower := strings.ToLower(value)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// equalsAny reports whether value is exactly one of the options.
func equalsAny(value string, options ...string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}

// shorterThan reports whether a non-empty value has fewer than n runes.
// Empty answers are "not given" and never count as too short.
func shorterThan(value string, n int) bool {
	return value != "" && utf8.RuneCountInString(value) < n
}

// stripGrouping removes the space and comma digit separators.
func stripGrouping(s string) string {
	return strings.TrimSpace(strings.NewReplacer(" ", "", ",", "").Replace(s))
}

// parseAmount reads a money amount such as "1 500 000" or "2,000,000.50".
func parseAmount(s string) (float64, bool) {
	clean := stripGrouping(s)
	if clean == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseCount reads a whole number such as "0" or "1 200".
func parseCount(s string) (int, bool) {
	clean := stripGrouping(s)
	if clean == "" {
		return 0, false
	}
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, false
	}
	return n, true
}

// whenContains builds a check that fires if field contains any marker.
func whenContains(field string, signal domain.Signal, markers ...string) NamedCheck {
	return NamedCheck{
		Field: field,
		Check: func(a domain.AnswerSet) (domain.Signal, bool) {
			if containsAny(a.Get(field), markers...) {
				return signal, true
			}
			return "", false
		},
	}
}

// noop reserves a slot for field.
func noop(field string) NamedCheck {
	return NamedCheck{Field: field, Check: NoopCheck}
}
