package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// CommentsByNews returns every comment of the news item with its author,
// oldest first.
func (r *Repository) CommentsByNews(ctx context.Context, newsID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Author).
		Where(`"t"."newsId" = ?`, newsID).
		OrderExpr(`"t"."createdAt" ASC`).
		OrderExpr(`"t"."commentId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// CommentByID returns nil, nil when the comment does not exist.
func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) CommentsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Comment)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get comments count: %w", err)
	}

	return count, nil
}

// CreateComment inserts the comment and fills ID and CreatedAt from the database.
func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	_, err := r.db.ModelContext(ctx, comment).
		Returning(`"commentId", "createdAt"`).
		Insert()
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// UpdateCommentText changes only the text column, and only while authorID still
// owns the comment. It reports whether a row was updated.
func (r *Repository) UpdateCommentText(ctx context.Context, commentID, authorID int, text string) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Comment{ID: commentID, Text: text}).
		Column(Columns.Comment.Text).
		Where(`"t"."commentId" = ?`, commentID).
		Where(`"t"."authorId" = ?`, authorID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// DeleteComment removes the comment if authorID owns it and reports whether
// a row was deleted.
func (r *Repository) DeleteComment(ctx context.Context, commentID, authorID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Where(`"t"."authorId" = ?`, authorID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
