package fetcher

import (
	"context"
	"fmt"

	"ewintr.nl/ytsum/model"
)

// TranscriptFetcher returns the caption text of a video. Implementations
// return an empty string, not an error, when a video has no captions.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, ytID model.YoutubeVideoID) (string, error)
}

const placeholderTranscript = `This is the content of the YouTube video with id %s. A real deployment fetches the actual captions of the video here; for now this placeholder text is used instead. The video covers a range of topics and offers viewers useful information. The creator explains the main concepts, shows practical examples and presents the material so that it is easy to follow. The video also points to related resources and material for further learning.`

// PlaceholderTranscript stands in for a captions integration.
type PlaceholderTranscript struct{}

func NewPlaceholderTranscript() *PlaceholderTranscript {
	return &PlaceholderTranscript{}
}

func (p *PlaceholderTranscript) FetchTranscript(ctx context.Context, ytID model.YoutubeVideoID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return fmt.Sprintf(placeholderTranscript, ytID), nil
}
