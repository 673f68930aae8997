package domain

// Zone is the traffic-light tier of a verdict. Hiring uses the
// low/medium/high vocabulary, every other domain green/yellow/red.
type Zone string

// Zones.
const (
	ZoneGreen   Zone = "green"
	ZoneYellow  Zone = "yellow"
	ZoneRed     Zone = "red"
	ZoneLow     Zone = "low"
	ZoneMedium  Zone = "medium"
	ZoneHigh    Zone = "high"
	ZoneUnknown Zone = "unknown"
)

// Rank orders zones from best (0) to worst (2). Unknown ranks -1.
func (z Zone) Rank() int {
	switch z {
	case ZoneGreen, ZoneLow:
		return 0
	case ZoneYellow, ZoneMedium:
		return 1
	case ZoneRed, ZoneHigh:
		return 2
	default:
		return -1
	}
}

// IsValid returns true if the zone is recognised.
func (z Zone) IsValid() bool {
	return z == ZoneUnknown || z.Rank() >= 0
}

// String returns the string representation.
func (z Zone) String() string {
	return string(z)
}

// Origin records how a verdict was produced.
type Origin string

// Origins.
const (
	OriginRuleBased   Origin = "rule_based"
	OriginAIGenerated Origin = "ai_generated"
)

// Signal is one human-readable risk factor found in the answers.
type Signal string

// Verdict is the outcome of analysing one AnswerSet.
//
// For rule-based verdicts Zone is derived from len(Signals) by the
// domain's policy. For AI verdicts Headline carries the full model text,
// Signals is empty and Zone is inferred from that text.
type Verdict struct {
	Domain         Domain   `json:"domain"`
	Zone           Zone     `json:"zone"`
	Headline       string   `json:"headline"`
	Signals        []Signal `json:"signals"`
	Recommendation string   `json:"recommendation"`
	Origin         Origin   `json:"origin"`
}

// IsAI reports whether the verdict text came from an LLM.
func (v Verdict) IsAI() bool {
	return v.Origin == OriginAIGenerated
}

// SignalStrings returns the signals as plain strings.
func (v Verdict) SignalStrings() []string {
	out := make([]string, len(v.Signals))
	for i, s := range v.Signals {
		out[i] = string(s)
	}
	return out
}
