// Package mockfeed serves pages of video metadata with simulated
// network latency, standing in for a real feed backend.
package mockfeed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reelfeed/reelfeed/domain"
)

const (
	// First page is served fast so the feed appears quickly; later
	// pages simulate a slower cold path.
	firstPageLatency = 300 * time.Millisecond
	laterPageLatency = 800 * time.Millisecond
)

// Service implements app.FeedService and app.CommentService over a
// built-in catalog of demo videos.
type Service struct {
	pageSize   int
	totalPages int
	latency    bool
}

// New creates a mock source. totalPages <= 0 means unbounded.
func New(pageSize, totalPages int) *Service {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Service{pageSize: pageSize, totalPages: totalPages, latency: true}
}

// NewInstant creates a source without simulated latency, for tests.
func NewInstant(pageSize, totalPages int) *Service {
	s := New(pageSize, totalPages)
	s.latency = false
	return s
}

// FetchPage returns page pageIndex of the catalog, newest first within
// the page. Item identity is stable for a given page index.
func (s *Service) FetchPage(ctx context.Context, pageIndex int) ([]domain.VideoItem, error) {
	if s.totalPages > 0 && pageIndex >= s.totalPages {
		return nil, domain.ErrNoMorePages
	}
	if s.latency {
		latency := laterPageLatency
		if pageIndex == 0 {
			latency = firstPageLatency
		}
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, ctx.Err())
		}
	}

	items := make([]domain.VideoItem, 0, s.pageSize)
	for i := 0; i < s.pageSize; i++ {
		n := pageIndex*s.pageSize + i
		seed := catalog[n%len(catalog)]
		item := seed
		item.ID = itemID(pageIndex, i)
		item.Author.ID = fmt.Sprintf("user-%d", n%len(catalog)+1)
		if pageIndex > 0 {
			item.Description = fmt.Sprintf("%s (#%d)", seed.Description, n+1)
		}
		items = append(items, item)
	}
	return items, nil
}

// itemID derives a stable UUID per (page, slot) so refetches of the
// same page reconcile by identity.
func itemID(page, slot int) string {
	name := fmt.Sprintf("reelfeed/video/%d/%d", page, slot)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// CommentsFor returns the drawer comments for a video. The set is
// deterministic per video id.
func (s *Service) CommentsFor(ctx context.Context, videoID string) ([]domain.Comment, error) {
	if s.latency {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, ctx.Err())
		}
	}
	now := time.Now()
	out := make([]domain.Comment, len(commentSeeds))
	for i, c := range commentSeeds {
		out[i] = domain.Comment{
			ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(videoID+"/comment/"+c.author)).String(),
			Author:    domain.Author{ID: "c-" + c.author, Username: c.author},
			Content:   c.content,
			Likes:     c.likes,
			CreatedAt: now.Add(-c.age),
		}
	}
	return out, nil
}

type commentSeed struct {
	author  string
	content string
	likes   int
	age     time.Duration
}

var commentSeeds = []commentSeed{
	{"film_fanatic", "This shot is incredible, how was it framed?", 234, 2 * time.Hour},
	{"daily_scroller", "Learned something new, thanks for sharing!", 128, 5 * time.Hour},
	{"clip_collector", "Waiting for part two 🔥", 89, 24 * time.Hour},
	{"passing_by", "That camera angle is unreal", 456, 48 * time.Hour},
	{"rewatcher", "Tenth rewatch and still finding new details", 321, 72 * time.Hour},
}
