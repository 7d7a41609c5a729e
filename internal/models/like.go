package models

import "time"

// Like represents a like on a paper ball. The composite unique index is the
// authority for "one like per user per paper": concurrent toggles race on
// check-then-insert and the index breaks the tie.
type Like struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	PaperID   string    `json:"paperId" gorm:"type:varchar(36);not null;uniqueIndex:idx_paper_user_like"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_paper_user_like"`
	CreatedAt time.Time `json:"createdAt"`
}
