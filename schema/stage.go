package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// StageKind discriminates the stage variant.
type StageKind int

// All stage kinds. The raw Stage column mixes numeric levels 0-4 with the
// canonical strings "Closed Won" / "Closed Lost"; every value resolves to
// exactly one of these kinds at the normalization boundary, and all downstream
// predicates match on the variant instead of re-parsing cells.
const (
	StageNumeric StageKind = iota
	StageClosedWon
	StageClosedLost
	StageUnrecognized
)

// Numeric stage levels and their meanings.
const (
	LevelProspecting   = 0
	LevelQualification = 1
	LevelProposal      = 2
	LevelNegotiation   = 3
	LevelClosedWon     = 4
)

// Thresholds for the bucket predicates. Late-stage and qualified are two
// distinct metrics: late-stage starts at Negotiation, qualified at Proposal.
const (
	lateStageThreshold = LevelNegotiation
	qualifiedThreshold = LevelProposal
)

// Stage is the tagged variant for one normalized stage value.
// Level is only meaningful when Kind is StageNumeric; Raw is only set when
// Kind is StageUnrecognized.
type Stage struct {
	Kind  StageKind
	Level int
	Raw   string
}

// NormalizeStage maps one raw stage cell to its canonical variant. Numeric
// parse is attempted first; otherwise the string is trimmed, lower-cased and
// matched against the two closed forms. Anything else passes through as an
// unrecognized category. The function is total and never fails.
func NormalizeStage(raw string) Stage {
	trimmed := strings.TrimSpace(raw)

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		n := int(v)
		if v == float64(n) && n >= LevelProspecting && n <= LevelClosedWon {
			return Stage{Kind: StageNumeric, Level: n}
		}
		// Parses as a number but is fractional or outside 0-4. Carried as
		// unrecognized so the cleaner can report the offending value.
		return Stage{Kind: StageUnrecognized, Raw: trimmed}
	}

	switch strings.ToLower(trimmed) {
	case "closed won":
		return Stage{Kind: StageClosedWon}
	case "closed lost":
		return Stage{Kind: StageClosedLost}
	}
	return Stage{Kind: StageUnrecognized, Raw: trimmed}
}

// Known reports whether the stage resolved to one of the five categories
// accepted by the cleaner.
func (s Stage) Known() bool {
	return s.Kind != StageUnrecognized
}

// IsLateStage reports whether the stage is at or beyond Negotiation, or
// terminally closed in either direction.
func (s Stage) IsLateStage() bool {
	switch s.Kind {
	case StageNumeric:
		return s.Level >= lateStageThreshold
	case StageClosedWon, StageClosedLost:
		return true
	default:
		return false
	}
}

// IsQualified reports whether the stage is at or beyond Proposal or won.
// Closed Lost is disqualified.
func (s Stage) IsQualified() bool {
	switch s.Kind {
	case StageNumeric:
		return s.Level >= qualifiedThreshold
	case StageClosedWon:
		return true
	default:
		return false
	}
}

// IsWon reports whether the opportunity closed won.
func (s Stage) IsWon() bool {
	return s.Kind == StageClosedWon || (s.Kind == StageNumeric && s.Level == LevelClosedWon)
}

// IsLost reports whether the opportunity closed lost.
func (s Stage) IsLost() bool {
	return s.Kind == StageClosedLost
}

// IsProspecting reports whether the stage is the initial numeric stage 0.
func (s Stage) IsProspecting() bool {
	return s.Kind == StageNumeric && s.Level == LevelProspecting
}

// stageLabels maps numeric levels to display names.
var stageLabels = [...]string{
	LevelProspecting:   "Prospecting",
	LevelQualification: "Qualification",
	LevelProposal:      "Proposal",
	LevelNegotiation:   "Negotiation",
	LevelClosedWon:     "Closed Won",
}

// Label returns the display name for the stage.
func (s Stage) Label() string {
	switch s.Kind {
	case StageNumeric:
		return stageLabels[s.Level]
	case StageClosedWon:
		return "Closed Won"
	case StageClosedLost:
		return "Closed Lost"
	default:
		return s.Raw
	}
}

// String implements fmt.Stringer for logs and error payloads.
func (s Stage) String() string {
	if s.Kind == StageNumeric {
		return fmt.Sprintf("%d (%s)", s.Level, s.Label())
	}
	return s.Label()
}
