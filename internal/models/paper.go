package models

import "time"

// Paper media types
const (
	PaperTypeText  = "text"
	PaperTypeImage = "image"
	PaperTypeAudio = "audio"
	PaperTypeVideo = "video"
)

// Paper represents a paper ball: a post anchored to a geographic point.
// Immutable after creation; like/comment counts are derived from the child
// tables at read time and never stored here.
type Paper struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Content   string    `json:"content" gorm:"type:text"`
	Type      string    `json:"type" gorm:"size:50;not null"`
	MediaURL  string    `json:"mediaUrl" gorm:"size:255"`
	AuthorID  string    `json:"authorId" gorm:"type:varchar(36);not null;index"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePaperRequest defines the request body for throwing a paper ball.
// Latitude/longitude are pointers so an omitted coordinate is rejected
// instead of defaulting to zero.
type CreatePaperRequest struct {
	Content   string   `json:"content"`
	Type      string   `json:"type" validate:"omitempty,oneof=text image audio video"`
	MediaURL  string   `json:"mediaUrl" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// PaperView is the joined read model returned by list and detail endpoints.
type PaperView struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	MediaURL       string    `json:"mediaUrl"`
	AuthorID       string    `json:"authorId"`
	AuthorNickname string    `json:"authorNickname"`
	AuthorAvatar   string    `json:"authorAvatar"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Likes          int64     `json:"likes"`
	CommentCount   int64     `json:"commentCount"`
	CreatedAt      time.Time `json:"createdAt"`
	// Distance from the query point in meters; only populated by nearby search.
	Distance float64 `json:"distance,omitempty" gorm:"-"`
}

// PaperDetail is a PaperView plus its full comment list.
type PaperDetail struct {
	PaperView
	Comments []CommentView `json:"comments"`
}
