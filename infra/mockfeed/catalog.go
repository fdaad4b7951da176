package mockfeed

import "github.com/reelfeed/reelfeed/domain"

const bucket = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/"

// catalog is the seed set of demo videos the mock source pages over.
var catalog = []domain.VideoItem{
	{
		MediaURL:    bucket + "BigBuckBunny.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687220742-aba13b6e50ba?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "creative_cuts", Verified: true},
		Description: "🎬 Big Buck Bunny, the classic short everyone should see #animation #vlog",
		Music:       &domain.Music{Name: "Upbeat Melody", Artist: "Studio Loops"},
		Stats:       domain.Stats{Likes: 128500, Comments: 3200, Shares: 890},
	},
	{
		MediaURL:    bucket + "ElephantsDream.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687221038-404cb8830901?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "arthouse_daily"},
		Description: "🎨 Elephants Dream — a surreal trip through a machine world #art #scifi",
		Music:       &domain.Music{Name: "Dream Circuit", Artist: "Electronic Dreams"},
		Stats:       domain.Stats{Likes: 95600, Comments: 2100, Shares: 560},
	},
	{
		MediaURL:    bucket + "ForBiggerBlazes.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687220063-4742bd7fd538?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "trail_seeker", Verified: true},
		Description: "🔥 For Bigger Blazes — light up your next adventure #outdoors #nature",
		Music:       &domain.Music{Name: "Adventure March", Artist: "Adventure Beats"},
		Stats:       domain.Stats{Likes: 215000, Comments: 5400, Shares: 1230},
	},
	{
		MediaURL:    bucket + "ForBiggerEscapes.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687220923-c58b9a4592ae?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "wander_lens", Verified: true},
		Description: "✈️ For Bigger Escapes — leave the city behind, travel vlog ep. 1 #travel",
		Music:       &domain.Music{Name: "Road Songs", Artist: "Wanderlust Music"},
		Stats:       domain.Stats{Likes: 187300, Comments: 4800, Shares: 920},
	},
	{
		MediaURL:    bucket + "ForBiggerFun.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687221080-5cb261c645cb?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "good_times", Verified: true},
		Description: "🎉 For Bigger Fun — happiness is this simple #fun #lifestyle",
		Music:       &domain.Music{Name: "Ode to Joy", Artist: "Happy Tunes"},
		Stats:       domain.Stats{Likes: 342000, Comments: 8900, Shares: 2100},
	},
	{
		MediaURL:    bucket + "ForBiggerJoyrides.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682687982501-1e58ab814714?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "gearhead_garage"},
		Description: "🏎️ For Bigger Joyrides — engines, open roads, nothing else #cars",
		Music:       &domain.Music{Name: "Full Throttle", Artist: "Drive Audio"},
		Stats:       domain.Stats{Likes: 154200, Comments: 3700, Shares: 1480},
	},
	{
		MediaURL:    bucket + "ForBiggerMeltdowns.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682686581427-7c80ab60e3f3?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "couch_critic"},
		Description: "📺 For Bigger Meltdowns — when the remote wins #comedy",
		Music:       nil,
		Stats:       domain.Stats{Likes: 88400, Comments: 1900, Shares: 410},
	},
	{
		MediaURL:    bucket + "Sintel.mp4",
		CoverURL:    "https://images.unsplash.com/photo-1682686580186-b55d2a91053c?w=400&h=700&fit=crop",
		Author:      domain.Author{Username: "open_cinema", Verified: true},
		Description: "🐉 Sintel — a girl, a dragon, and a long search #animation #fantasy",
		Music:       &domain.Music{Name: "Snow Theme", Artist: "Durian Ensemble"},
		Stats:       domain.Stats{Likes: 267800, Comments: 6100, Shares: 1890},
	},
}
