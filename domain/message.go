package domain

import "time"

// Message is the canonical chat message value. Author is nil for anonymous
// guest messages. Per-viewer flags (liked, bookmarked) live on the response
// views in dto, not here, because they depend on who is asking.
type Message struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Author    *User     `json:"author"`
	Likes     int       `json:"likes"`
	Bookmarks int       `json:"bookmarks"`
	Edited    bool      `json:"edited"`
	CreatedAt time.Time `json:"createdAt"`
}
