package fetcher

import (
	"context"
	"fmt"
	"time"

	"ewintr.nl/ytsum/model"
	"google.golang.org/api/youtube/v3"
)

type Youtube struct {
	Client  *youtube.Service
	timeout time.Duration
}

func NewYoutube(client *youtube.Service, timeout time.Duration) *Youtube {
	return &Youtube{
		Client:  client,
		timeout: timeout,
	}
}

func (y *Youtube) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (*model.Metadata, error) {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	response, err := y.Client.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(string(ytID)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list video %s: %w", ytID, err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ytID)
	}

	item := response.Items[0]
	if item.Snippet == nil {
		return nil, fmt.Errorf("%w: %s has no snippet", ErrNotFound, ytID)
	}
	md := &model.Metadata{
		ID:           ytID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
	}
	if item.ContentDetails != nil {
		md.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		md.ViewCount = item.Statistics.ViewCount
		md.LikeCount = item.Statistics.LikeCount
		md.CommentCount = item.Statistics.CommentCount
	}

	return md, nil
}
