package rest

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/K-u-n-i-n/ya-news/internal/db"
	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

const (
	authorSession = "author-session"
	readerSession = "reader-session"
	testPassword  = "password123"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// stubManager is an in-memory newsportal.IManager. Ownership and form rules are
// delegated to the newsportal package so handlers see the real decisions.
type stubManager struct {
	pageSize  int
	news      []newsportal.News
	comments  map[int]*newsportal.Comment
	users     map[string]*newsportal.User
	passwords map[string]string
	sessions  map[string]*newsportal.User
	nextID    int
	err       error
}

func newStubManager() *stubManager {
	s := &stubManager{
		pageSize:  newsportal.DefaultNewsCountOnHomePage,
		comments:  make(map[int]*newsportal.Comment),
		users:     make(map[string]*newsportal.User),
		passwords: make(map[string]string),
		sessions:  make(map[string]*newsportal.User),
		nextID:    100,
	}

	for i := 0; i < 11; i++ {
		s.news = append(s.news, newsportal.News{News: db.News{
			ID:    i + 1,
			Title: "Новость " + string(rune('A'+i)),
			Text:  "Просто текст.",
			Date:  baseTime.AddDate(0, 0, -i),
		}})
	}

	author := s.addUser(1, "Лев Толстой")
	reader := s.addUser(2, "Читатель простой")
	s.sessions[authorSession] = author
	s.sessions[readerSession] = reader

	for i := 1; i <= 2; i++ {
		s.comments[i] = &newsportal.Comment{
			Comment: db.Comment{
				ID:        i,
				NewsID:    1,
				AuthorID:  author.ID,
				Text:      "Текст комментария " + string(rune('0'+i)),
				CreatedAt: baseTime.Add(time.Duration(i) * time.Hour),
			},
			Author: *author,
		}
	}

	return s
}

func (s *stubManager) addUser(id int, username string) *newsportal.User {
	u := &newsportal.User{User: db.User{ID: id, Username: username}}
	s.users[username] = u
	s.passwords[username] = testPassword
	return u
}

func (s *stubManager) PageSize() int { return s.pageSize }

func (s *stubManager) HomeNews(_ context.Context, limit int) (newsportal.NewsList, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < 1 || limit > s.pageSize {
		limit = s.pageSize
	}
	if limit > len(s.news) {
		limit = len(s.news)
	}
	return newsportal.NewsList(s.news[:limit]), nil
}

func (s *stubManager) NewsByID(_ context.Context, newsID int) (*newsportal.News, error) {
	for i := range s.news {
		if s.news[i].ID == newsID {
			n := s.news[i]
			return &n, nil
		}
	}
	return nil, newsportal.ErrNewsNotFound
}

func (s *stubManager) NewsComments(_ context.Context, newsID int) (newsportal.Comments, error) {
	var list newsportal.Comments
	for _, c := range s.comments {
		if c.NewsID == newsID {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (s *stubManager) AddComment(ctx context.Context, author *newsportal.User, newsID int, form newsportal.CommentForm) (*newsportal.Comment, error) {
	if _, err := s.NewsByID(ctx, newsID); err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	s.nextID++
	c := &newsportal.Comment{
		Comment: db.Comment{
			ID:        s.nextID,
			NewsID:    newsID,
			AuthorID:  author.ID,
			Text:      form.Text,
			CreatedAt: baseTime.Add(time.Duration(s.nextID) * time.Hour),
		},
		Author: *author,
	}
	s.comments[c.ID] = c
	return c, nil
}

func (s *stubManager) EditableComment(_ context.Context, user *newsportal.User, commentID int) (*newsportal.Comment, error) {
	c, ok := s.comments[commentID]
	if !ok || !newsportal.CanModify(user, c) {
		return nil, newsportal.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubManager) EditComment(ctx context.Context, user *newsportal.User, commentID int, form newsportal.CommentForm) (*newsportal.Comment, error) {
	c, err := s.EditableComment(ctx, user, commentID)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return c, err
	}

	s.comments[commentID].Text = form.Text
	c.Text = form.Text
	return c, nil
}

func (s *stubManager) DeleteComment(ctx context.Context, user *newsportal.User, commentID int) (*newsportal.Comment, error) {
	c, err := s.EditableComment(ctx, user, commentID)
	if err != nil {
		return nil, err
	}

	delete(s.comments, commentID)
	return c, nil
}

func (s *stubManager) Signup(_ context.Context, form newsportal.SignupForm) (*newsportal.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.users[form.Username]; ok {
		return nil, &newsportal.ValidationError{
			Fields: map[string][]string{"username": {"Пользователь с таким именем уже существует."}},
		}
	}

	u := s.addUser(len(s.users)+1, form.Username)
	s.passwords[form.Username] = form.Password1
	return u, nil
}

func (s *stubManager) Authenticate(_ context.Context, form newsportal.LoginForm) (*newsportal.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	u, ok := s.users[form.Username]
	if !ok || s.passwords[form.Username] != form.Password {
		return nil, &newsportal.ValidationError{
			Fields:   map[string][]string{},
			NonField: []string{"Пожалуйста, введите правильные имя пользователя и пароль."},
		}
	}
	return u, nil
}

func (s *stubManager) StartSession(_ context.Context, user *newsportal.User) (*newsportal.Session, error) {
	key := "session-" + strconv.Itoa(user.ID)
	s.sessions[key] = user
	return &newsportal.Session{
		Session: db.Session{Key: key, UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)},
		User:    *user,
	}, nil
}

func (s *stubManager) UserBySession(_ context.Context, key string) (*newsportal.User, error) {
	return s.sessions[key], nil
}

func (s *stubManager) EndSession(_ context.Context, key string) error {
	delete(s.sessions, key)
	return nil
}

var _ newsportal.IManager = (*stubManager)(nil)
