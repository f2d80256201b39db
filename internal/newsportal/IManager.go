package newsportal

import "context"

// IManager defines the portal operations used by the transport layers
type IManager interface {
	PageSize() int
	HomeNews(ctx context.Context, limit int) (NewsList, error)
	NewsByID(ctx context.Context, newsID int) (*News, error)
	NewsComments(ctx context.Context, newsID int) (Comments, error)

	AddComment(ctx context.Context, author *User, newsID int, form CommentForm) (*Comment, error)
	EditableComment(ctx context.Context, user *User, commentID int) (*Comment, error)
	EditComment(ctx context.Context, user *User, commentID int, form CommentForm) (*Comment, error)
	DeleteComment(ctx context.Context, user *User, commentID int) (*Comment, error)

	Signup(ctx context.Context, form SignupForm) (*User, error)
	Authenticate(ctx context.Context, form LoginForm) (*User, error)
	StartSession(ctx context.Context, user *User) (*Session, error)
	UserBySession(ctx context.Context, key string) (*User, error)
	EndSession(ctx context.Context, key string) error
}

var _ IManager = (*Manager)(nil)
