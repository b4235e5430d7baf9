package model

import "time"

type YoutubeVideoID string

// Metadata is a read-only snapshot of a video as reported by the YouTube
// Data API.
type Metadata struct {
	ID           YoutubeVideoID `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ChannelTitle string         `json:"channelTitle"`
	PublishedAt  string         `json:"publishedAt"`
	Duration     string         `json:"duration"`
	ViewCount    uint64         `json:"viewCount"`
	LikeCount    uint64         `json:"likeCount"`
	CommentCount uint64         `json:"commentCount"`
}

// Length returns the parsed duration of the video, or zero when the API
// reported none or something unparsable.
func (m Metadata) Length() time.Duration {
	d, err := ParseISODuration(m.Duration)
	if err != nil {
		return 0
	}
	return d
}
