package models

import "time"

// Message notification types
const (
	MessageTypeComment = "comment"
	MessageTypeReply   = "reply"
	MessageTypeLike    = "like"
)

// MessageLikeContent is the fixed snippet stored for like notifications.
const MessageLikeContent = "liked your paper"

// Message represents a notification delivered to a user about another user's
// interaction with their content. Append-only; only IsRead is ever mutated.
// An invariant of the policy layer: FromUserID != UserID for every stored row.
type Message struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID     string    `json:"userId" gorm:"type:varchar(36);not null;index"` // recipient
	Type       string    `json:"type" gorm:"size:20;not null"`
	PaperID    string    `json:"paperId" gorm:"type:varchar(36);not null;index"`
	CommentID  *string   `json:"commentId" gorm:"type:varchar(36)"`
	FromUserID string    `json:"fromUserId" gorm:"type:varchar(36);not null"` // actor
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsRead     bool      `json:"isRead" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageActor is the actor summary embedded in a MessageView.
type MessageActor struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// MessagePaper is the related-paper preview embedded in a MessageView.
type MessagePaper struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// MessageComment is the related-comment preview embedded in a MessageView.
type MessageComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// MessageView is the enriched notification returned by the feed endpoint.
type MessageView struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Content        string          `json:"content"`
	IsRead         bool            `json:"isRead"`
	CreatedAt      time.Time       `json:"createdAt"`
	FromUser       MessageActor    `json:"fromUser"`
	RelatedPaper   MessagePaper    `json:"relatedPaper"`
	RelatedComment *MessageComment `json:"relatedComment,omitempty"`
}
