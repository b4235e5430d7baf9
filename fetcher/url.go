package fetcher

import (
	"regexp"
	"strings"

	"ewintr.nl/ytsum/model"
)

// Order matters: the first pattern that captures an id wins.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/watch\?(?:\S*?&)?v=([^&#\s]+)\S*$`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/embed/([^/?&#\s]+)\S*$`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/v/([^/?&#\s]+)\S*$`),
	regexp.MustCompile(`^https?://youtu\.be/([^/?&#\s]+)\S*$`),
	regexp.MustCompile(`^https?://(?:www\.)?youtube\.com/shorts/([^/?&#\s]+)\S*$`),
}

// ExtractVideoID returns the video id from a watch, embed, /v/, youtu.be or
// shorts URL. Anything else, including empty input, yields false.
func ExtractVideoID(raw string) (model.YoutubeVideoID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, re := range videoURLPatterns {
		if m := re.FindStringSubmatch(raw); len(m) == 2 && m[1] != "" {
			return model.YoutubeVideoID(m[1]), true
		}
	}

	return "", false
}
