package services

import (
	"log"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

// NotificationPolicy decides whether a like/comment/reply event produces a
// notification row, never notifying the acting user about their own action.
// Writes are best-effort: a failed notification is logged and swallowed so it
// can never block the interaction that triggered it.
type NotificationPolicy struct {
	messages repositories.MessageRepository
}

// NewNotificationPolicy creates a new NotificationPolicy
func NewNotificationPolicy(messageRepo repositories.MessageRepository) *NotificationPolicy {
	return &NotificationPolicy{messages: messageRepo}
}

// NotifyLike emits a like notification to the paper's author. Unliking emits
// nothing and does not retract a previously sent notification.
func (p *NotificationPolicy) NotifyLike(paperID, paperAuthorID, actorID string) {
	if paperAuthorID == actorID {
		return
	}
	p.deliver(&models.Message{
		UserID:     paperAuthorID,
		Type:       models.MessageTypeLike,
		PaperID:    paperID,
		FromUserID: actorID,
		Content:    models.MessageLikeContent,
	})
}

// NotifyComment emits a comment notification to the paper's author for a new
// top-level comment.
func (p *NotificationPolicy) NotifyComment(paperAuthorID string, comment *models.Comment) {
	if paperAuthorID == comment.AuthorID {
		return
	}
	p.deliver(&models.Message{
		UserID:     paperAuthorID,
		Type:       models.MessageTypeComment,
		PaperID:    comment.PaperID,
		CommentID:  &comment.ID,
		FromUserID: comment.AuthorID,
		Content:    comment.Content,
	})
}

// NotifyReply emits a reply notification to the author of the addressee
// comment, which is the resolved top-level ancestor of the thread.
func (p *NotificationPolicy) NotifyReply(addressee, comment *models.Comment) {
	if addressee.AuthorID == comment.AuthorID {
		return
	}
	p.deliver(&models.Message{
		UserID:     addressee.AuthorID,
		Type:       models.MessageTypeReply,
		PaperID:    comment.PaperID,
		CommentID:  &comment.ID,
		FromUserID: comment.AuthorID,
		Content:    comment.Content,
	})
}

func (p *NotificationPolicy) deliver(message *models.Message) {
	if err := p.messages.CreateMessage(message); err != nil {
		log.Printf("notification write failed (type=%s, recipient=%s): %v", message.Type, message.UserID, err)
	}
}
