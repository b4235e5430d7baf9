package fetcher

import (
	"context"
	"errors"

	"ewintr.nl/ytsum/model"
)

var ErrNotFound = errors.New("video not found")

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (*model.Metadata, error)
}
