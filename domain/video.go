package domain

import "time"

// Author describes the creator of a video.
type Author struct {
	ID        string
	Username  string
	AvatarURL string
	Verified  bool
}

// Music describes the audio track attached to a video, if any.
type Music struct {
	Name   string
	Artist string
}

// Stats holds the engagement counters shown next to a video.
type Stats struct {
	Likes    int
	Comments int
	Shares   int
}

// VideoItem is a single entry in the feed. Identity and locators are
// immutable once created; Liked and Stats are mutated only through the
// optimistic interaction path.
type VideoItem struct {
	ID          string
	MediaURL    string
	CoverURL    string
	Author      Author
	Description string
	Music       *Music
	Stats       Stats
	Liked       bool
}

// Comment is a single entry in a video's comment drawer.
type Comment struct {
	ID        string
	Author    Author
	Content   string
	Likes     int
	Liked     bool
	CreatedAt time.Time
}
