package models

import "time"

type Post struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int       `json:"authorId"`
	CategoryID int       `json:"categoryId"`
	TimeAgo    string    `json:"timeAgo"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PostParticipant records "discussed this" attribution for a post.
type PostParticipant struct {
	ID     int `json:"id"`
	PostID int `json:"postId"`
	UserID int `json:"userId"`
}

// SavedPost is a bookmark relation; at most one record exists per
// (PostID, UserID) pair.
type SavedPost struct {
	ID     int `json:"id"`
	PostID int `json:"postId"`
	UserID int `json:"userId"`
}
