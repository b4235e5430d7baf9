package process

import (
	"fmt"
	"strings"
	"time"

	"ewintr.nl/ytsum/model"
)

var briefFallbackTimeline = []model.TimelineItem{
	{Time: "00:00", Title: "Introduction", Description: "The video introduces its topic."},
	{Time: "01:30", Title: "Background", Description: "Context needed to follow the rest of the video."},
	{Time: "03:00", Title: "Main points", Description: "The central ideas of the video are presented."},
	{Time: "05:00", Title: "Examples", Description: "The ideas are illustrated with examples."},
	{Time: "07:00", Title: "Conclusion", Description: "The video wraps up with its key takeaways."},
}

var fallbackThemes = []string{
	"introduction of the subject",
	"background and context",
	"explanation of a key concept",
	"a worked example",
	"discussion of the details",
	"analysis and comparison",
	"a practical tip",
	"recap of the section",
}

// fallbackTimeline is used when the model does not deliver a usable timeline.
// Items are three minutes apart with a random second, so they stay in order.
func fallbackTimeline(mode model.SummaryMode, intn func(int) int) []model.TimelineItem {
	size := mode.TimelineSize()
	if size <= len(briefFallbackTimeline) {
		items := make([]model.TimelineItem, len(briefFallbackTimeline))
		copy(items, briefFallbackTimeline)
		return items
	}

	items := make([]model.TimelineItem, size)
	for i := range items {
		at := time.Duration(i*3)*time.Minute + time.Duration(intn(60))*time.Second
		items[i] = model.TimelineItem{
			Time:        model.FormatTimestamp(at),
			Title:       fmt.Sprintf("Section %d", i+1),
			Description: fmt.Sprintf("Key moment %d: %s.", i+1, fallbackThemes[i%len(fallbackThemes)]),
		}
	}
	return items
}

// estimatedLength is assumed when the video length is unknown.
const estimatedLength = 10 * time.Minute

// durationTimeline marks the start, the first quarter, the middle and the 80%
// point of the video.
func durationTimeline(md model.Metadata) []model.TimelineItem {
	length := md.Length()
	if length <= 0 {
		length = estimatedLength
	}
	at := func(pct int) string {
		return model.FormatTimestamp(length * time.Duration(pct) / 100)
	}

	return []model.TimelineItem{
		{Time: "00:00", Title: "Start", Description: fmt.Sprintf("Beginning of %q.", md.Title)},
		{Time: at(25), Title: "First quarter", Description: "The main subject is developed."},
		{Time: at(50), Title: "Midpoint", Description: "The core of the video."},
		{Time: at(80), Title: "Closing part", Description: "The video moves towards its conclusion."},
	}
}

// fallbackSummary is a templated summary built from metadata alone.
func fallbackSummary(md model.Metadata) string {
	var sb strings.Builder
	sb.WriteString("1. Video overview\n")
	fmt.Fprintf(&sb, "%q is a video by %s.\n\n", md.Title, md.ChannelTitle)
	sb.WriteString("2. Details\n")
	if length := md.Length(); length > 0 {
		fmt.Fprintf(&sb, "- Length: %s\n", model.FormatDuration(length))
	}
	fmt.Fprintf(&sb, "- Views: %s\n", model.FormatCount(md.ViewCount))
	if md.PublishedAt != "" {
		if published, err := time.Parse(time.RFC3339, md.PublishedAt); err == nil {
			fmt.Fprintf(&sb, "- Published: %s\n", published.Format("2006-01-02"))
		}
	}
	sb.WriteString("\nAn automated summary could not be generated for this video right now. Please try again later.")

	return sb.String()
}
