package model

import "time"

type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Community *Community `json:"community,omitempty"`
	User      *User      `json:"user,omitempty"`
	Comments  []Comment  `json:"comments"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	CommunityID int64  `json:"communityId" binding:"required"`
}

// UpdatePostRequest carries only the fields the caller wants to change.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	CommunityID *int64  `json:"communityId"`
}

// PostFilter narrows post listings. Zero values mean "any".
type PostFilter struct {
	CommunityID int64
	UserID      int64
}
