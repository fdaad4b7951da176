package app

import (
	"context"

	"github.com/reelfeed/reelfeed/domain"
)

// FeedService fetches pages of feed items from a paged video source.
type FeedService interface {
	// FetchPage returns the items for pageIndex. Pages are append-only:
	// indices of previously returned items never change. Returns
	// domain.ErrNoMorePages when the source is exhausted and
	// domain.ErrFeedUnavailable for transient failures.
	FetchPage(ctx context.Context, pageIndex int) ([]domain.VideoItem, error)
}

// CommentService loads the comments shown in the drawer for a video.
type CommentService interface {
	CommentsFor(ctx context.Context, videoID string) ([]domain.Comment, error)
}
