package models

import "time"

// Comment represents a comment on a paper ball. The thread is at most two
// levels deep: ParentID is either nil (top-level comment) or references a
// comment whose own ParentID is nil. Submissions that would violate this are
// re-parented before persistence (see services.ThreadNormalizer).
type Comment struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PaperID   string    `json:"paperId" gorm:"type:varchar(36);not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  string    `json:"authorId" gorm:"type:varchar(36);not null;index"`
	ParentID  *string   `json:"parentId" gorm:"type:varchar(36);index"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCommentRequest defines the request body for commenting on a paper.
// ParentID targets an existing comment on the same paper; replies to a reply
// are re-targeted to the top-level ancestor.
type CreateCommentRequest struct {
	Content  string  `json:"content" validate:"required,min=1,max=500"`
	ParentID *string `json:"parentId" validate:"omitempty,uuid4"`
}

// CommentView is the joined read model with author details.
type CommentView struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"authorId"`
	AuthorNickname string    `json:"authorNickname"`
	AuthorAvatar   string    `json:"authorAvatar"`
	ParentID       *string   `json:"parentId"`
	CreatedAt      time.Time `json:"createdAt"`
}
