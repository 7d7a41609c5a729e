package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// DefaultAvatar is assigned at registration when the client does not pick one.
const DefaultAvatar = "https://api.dicebear.com/7.x/thumbs/svg?seed=paperball"

// User represents a registered account. Nicknames are globally unique.
type User struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Nickname  string    `json:"nickname" gorm:"size:20;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Avatar    string    `json:"avatar" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=20"`
	Password string `json:"password" validate:"required"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,max=255"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateNicknameRequest defines the request body for renaming an account
type UpdateNicknameRequest struct {
	Nickname string `json:"nickname" validate:"required,min=2,max=20"`
}

// UpdateAvatarRequest defines the request body for changing an avatar
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,max=255"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}
