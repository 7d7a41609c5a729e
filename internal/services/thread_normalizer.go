// Package services holds the domain logic sitting between handlers and
// repositories: comment thread normalization and notification fan-out.
package services

import (
	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

// ThreadNormalizer enforces the two-level comment hierarchy: a stored comment
// either has no parent or points at a comment that itself has none.
type ThreadNormalizer struct {
	comments repositories.CommentRepository
}

// NewThreadNormalizer creates a new ThreadNormalizer
func NewThreadNormalizer(commentRepo repositories.CommentRepository) *ThreadNormalizer {
	return &ThreadNormalizer{comments: commentRepo}
}

// Resolve maps a requested parent comment to the effective parent to persist
// and the addressee comment whose author receives the reply notification.
//
// A nil request means a new top-level comment: both results are nil. A request
// targeting a reply is re-targeted to that reply's own parent, so the stored
// tree never exceeds two levels; the addressee is then the top-level ancestor,
// not the reply the client tapped on. A parent that does not exist or belongs
// to a different paper fails with repositories.ErrNotFound.
func (n *ThreadNormalizer) Resolve(paperID string, requestedParentID *string) (*string, *models.Comment, error) {
	if requestedParentID == nil || *requestedParentID == "" {
		return nil, nil, nil
	}

	parent, err := n.comments.GetCommentForPaper(*requestedParentID, paperID)
	if err != nil {
		return nil, nil, err
	}

	effectiveParentID := &parent.ID
	addressee := parent
	if parent.ParentID != nil {
		// Replying to a reply: collapse onto the top-level ancestor.
		effectiveParentID = parent.ParentID
		if ancestor, err := n.comments.GetCommentForPaper(*parent.ParentID, paperID); err == nil {
			addressee = ancestor
		}
	}
	return effectiveParentID, addressee, nil
}
