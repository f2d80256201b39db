package newsportal

import (
	"context"
	"fmt"

	"github.com/K-u-n-i-n/ya-news/internal/db"
)

// CanModify reports whether user may edit or delete comment: only its author can.
func CanModify(user *User, comment *Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return user.ID != 0 && user.ID == comment.AuthorID
}

// AddComment validates the form and stores a new comment by author on the news item.
// A rejected form is returned as *ValidationError and nothing is stored.
func (m *Manager) AddComment(ctx context.Context, author *User, newsID int, form CommentForm) (*Comment, error) {
	if _, err := m.NewsByID(ctx, newsID); err != nil {
		return nil, err
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	dbComment := &db.Comment{
		NewsID:   newsID,
		AuthorID: author.ID,
		Text:     form.Text,
	}
	if err := m.db.CreateComment(ctx, dbComment); err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	m.log.Info("comment created", "commentID", dbComment.ID, "newsID", newsID, "authorID", author.ID)

	comment := NewComment(dbComment)
	comment.Author = *author
	return &comment, nil
}

// EditableComment returns the comment if user may modify it. A missing comment
// and a comment of another user both yield ErrCommentNotFound.
func (m *Manager) EditableComment(ctx context.Context, user *User, commentID int) (*Comment, error) {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if dbComment == nil {
		return nil, ErrCommentNotFound
	}

	comment := NewComment(dbComment)
	if !CanModify(user, &comment) {
		m.log.Warn("comment access denied", "commentID", commentID, "userID", userID(user))
		return nil, ErrCommentNotFound
	}

	return &comment, nil
}

// EditComment replaces the text of a comment owned by user. Ownership is checked
// before the form, so a foreign comment is reported as not found even for a bad form.
func (m *Manager) EditComment(ctx context.Context, user *User, commentID int, form CommentForm) (*Comment, error) {
	comment, err := m.EditableComment(ctx, user, commentID)
	if err != nil {
		return nil, err
	}

	if err := form.Validate(); err != nil {
		return comment, err
	}

	ok, err := m.db.UpdateCommentText(ctx, commentID, user.ID, form.Text)
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	} else if !ok {
		return nil, ErrCommentNotFound
	}

	m.log.Info("comment updated", "commentID", commentID, "authorID", user.ID)

	comment.Text = form.Text
	return comment, nil
}

// DeleteComment removes a comment owned by user and returns it.
func (m *Manager) DeleteComment(ctx context.Context, user *User, commentID int) (*Comment, error) {
	comment, err := m.EditableComment(ctx, user, commentID)
	if err != nil {
		return nil, err
	}

	ok, err := m.db.DeleteComment(ctx, commentID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("db delete comment: %w", err)
	} else if !ok {
		return nil, ErrCommentNotFound
	}

	m.log.Info("comment deleted", "commentID", commentID, "authorID", user.ID)

	return comment, nil
}

func userID(u *User) int {
	if u == nil {
		return 0
	}
	return u.ID
}
