package model

import "github.com/google/uuid"

type SummaryMode string

const (
	ModeBrief    SummaryMode = "brief"
	ModeDetailed SummaryMode = "detailed"
	ModeBullet   SummaryMode = "bullet"
	ModeELI5     SummaryMode = "eli5"
	ModeAcademic SummaryMode = "academic"
)

var summaryModes = map[SummaryMode]bool{
	ModeBrief:    true,
	ModeDetailed: true,
	ModeBullet:   true,
	ModeELI5:     true,
	ModeAcademic: true,
}

// ParseSummaryMode never fails: anything that is not a known mode, the empty
// string included, becomes ModeBrief.
func ParseSummaryMode(s string) SummaryMode {
	mode := SummaryMode(s)
	if !summaryModes[mode] {
		return ModeBrief
	}
	return mode
}

// TimelineSize is the number of timeline items expected for a mode.
func (m SummaryMode) TimelineSize() int {
	if ParseSummaryMode(string(m)) == ModeBrief {
		return 5
	}
	return 20
}

// Source records where a piece of content came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type TimelineItem struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Timeline struct {
	Items  []TimelineItem
	Source Source
}

type Request struct {
	ID       uuid.UUID
	VideoURL string
	Mode     SummaryMode
	Timeline bool
}

type Summary struct {
	Metadata       Metadata
	Text           string
	SummarySource  Source
	Timeline       []TimelineItem
	TimelineSource Source
}

// Degraded reports whether any part of the summary was produced by a
// fallback path instead of the language model.
func (s *Summary) Degraded() bool {
	return s.SummarySource == SourceFallback || s.TimelineSource == SourceFallback
}
