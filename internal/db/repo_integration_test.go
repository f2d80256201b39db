package db

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
)

var (
	testDB       *pg.DB
	testFixtures *Fixtures
)

func TestMain(m *testing.M) {
	var err error
	testDB, testFixtures, err = SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestNewsList_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("LimitIsRespected", func(t *testing.T) {
		news, err := repo.NewsList(ctx, 10)
		if err != nil {
			t.Fatalf("NewsList: %v", err)
		}
		if len(news) != 10 {
			t.Fatalf("expected 10 news items, got %d", len(news))
		}
	})

	t.Run("SortedByDateDesc", func(t *testing.T) {
		news, err := repo.NewsList(ctx, TestNewsCount)
		if err != nil {
			t.Fatalf("NewsList: %v", err)
		}
		if len(news) != TestNewsCount {
			t.Fatalf("expected %d news items, got %d", TestNewsCount, len(news))
		}
		for i := 0; i < len(news)-1; i++ {
			if news[i].Date.Before(news[i+1].Date) {
				t.Fatalf("news not sorted by date desc at %d: %v < %v", i, news[i].Date, news[i+1].Date)
			}
		}
		if news[0].ID != testFixtures.News.ID {
			t.Errorf("expected newest news %d first, got %d", testFixtures.News.ID, news[0].ID)
		}
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.NewsCount(ctx)
		if err != nil {
			t.Fatalf("NewsCount: %v", err)
		}
		if count != TestNewsCount {
			t.Fatalf("expected %d news items, got %d", TestNewsCount, count)
		}
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		if _, err := repo.NewsList(ctx, 0); err == nil {
			t.Fatal("expected error for zero limit")
		}
	})
}

func TestNewsByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	news, err := repo.NewsByID(ctx, testFixtures.News.ID)
	if err != nil {
		t.Fatalf("NewsByID: %v", err)
	}
	if news == nil || news.Title != testFixtures.News.Title {
		t.Fatalf("unexpected news: %+v", news)
	}

	missing, err := repo.NewsByID(ctx, 99999)
	if err != nil {
		t.Fatalf("expected nil error for missing news, got %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil news, got %+v", missing)
	}
}

func TestCommentsByNews_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	comments, err := repo.CommentsByNews(ctx, testFixtures.News.ID)
	if err != nil {
		t.Fatalf("CommentsByNews: %v", err)
	}
	if len(comments) != TestCommentsCount {
		t.Fatalf("expected %d comments, got %d", TestCommentsCount, len(comments))
	}
	for i := 0; i < len(comments)-1; i++ {
		if comments[i].CreatedAt.After(comments[i+1].CreatedAt) {
			t.Fatalf("comments not sorted by createdAt asc at %d", i)
		}
	}
	for _, c := range comments {
		if c.Author == nil || c.Author.ID != testFixtures.Author.ID {
			t.Fatalf("comment %d: author not loaded: %+v", c.ID, c.Author)
		}
	}

	empty, err := repo.CommentsByNews(ctx, 99999)
	if err != nil {
		t.Fatalf("CommentsByNews for missing news: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestCommentLifecycle_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	comment := &Comment{
		NewsID:   testFixtures.News.ID,
		AuthorID: testFixtures.Reader.ID,
		Text:     "Новый комментарий",
	}
	if err := repo.CreateComment(ctx, comment); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.ID == 0 || comment.CreatedAt.IsZero() {
		t.Fatalf("expected id and createdAt to be returned, got %+v", comment)
	}

	t.Run("UpdateByOtherUserIsIgnored", func(t *testing.T) {
		ok, err := repo.UpdateCommentText(ctx, comment.ID, testFixtures.Author.ID, "чужой текст")
		if err != nil {
			t.Fatalf("UpdateCommentText: %v", err)
		}
		if ok {
			t.Fatal("expected no rows updated for non-author")
		}
		got, err := repo.CommentByID(ctx, comment.ID)
		if err != nil {
			t.Fatalf("CommentByID: %v", err)
		}
		if got.Text != comment.Text {
			t.Fatalf("text changed to %q", got.Text)
		}
	})

	t.Run("UpdateByAuthorChangesOnlyText", func(t *testing.T) {
		ok, err := repo.UpdateCommentText(ctx, comment.ID, testFixtures.Reader.ID, "Обновленный текст")
		if err != nil {
			t.Fatalf("UpdateCommentText: %v", err)
		}
		if !ok {
			t.Fatal("expected row to be updated")
		}
		got, err := repo.CommentByID(ctx, comment.ID)
		if err != nil {
			t.Fatalf("CommentByID: %v", err)
		}
		if got.Text != "Обновленный текст" {
			t.Fatalf("unexpected text %q", got.Text)
		}
		if got.NewsID != comment.NewsID || got.AuthorID != comment.AuthorID {
			t.Fatalf("references changed: %+v", got)
		}
		if !got.CreatedAt.Equal(comment.CreatedAt) {
			t.Fatalf("createdAt changed: %v != %v", got.CreatedAt, comment.CreatedAt)
		}
	})

	t.Run("DeleteByOtherUserIsIgnored", func(t *testing.T) {
		ok, err := repo.DeleteComment(ctx, comment.ID, testFixtures.Author.ID)
		if err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}
		if ok {
			t.Fatal("expected no rows deleted for non-author")
		}
	})

	t.Run("DeleteByAuthor", func(t *testing.T) {
		before, err := repo.CommentsCount(ctx)
		if err != nil {
			t.Fatalf("CommentsCount: %v", err)
		}
		ok, err := repo.DeleteComment(ctx, comment.ID, testFixtures.Reader.ID)
		if err != nil {
			t.Fatalf("DeleteComment: %v", err)
		}
		if !ok {
			t.Fatal("expected row to be deleted")
		}
		after, err := repo.CommentsCount(ctx)
		if err != nil {
			t.Fatalf("CommentsCount: %v", err)
		}
		if after != before-1 {
			t.Fatalf("expected count %d, got %d", before-1, after)
		}
		got, err := repo.CommentByID(ctx, comment.ID)
		if err != nil {
			t.Fatalf("CommentByID: %v", err)
		}
		if got != nil {
			t.Fatalf("expected comment to be gone, got %+v", got)
		}
	})
}

func TestUsers_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	user, err := repo.UserByUsername(ctx, testFixtures.Author.Username)
	if err != nil {
		t.Fatalf("UserByUsername: %v", err)
	}
	if user == nil || user.ID != testFixtures.Author.ID {
		t.Fatalf("unexpected user %+v", user)
	}

	missing, err := repo.UserByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing user, got %+v, %v", missing, err)
	}

	dup := &User{Username: testFixtures.Author.Username, PasswordHash: "x"}
	err = repo.CreateUser(ctx, dup)
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

func TestSessions_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)
	now := time.Now()

	active := &Session{Key: "active-key", UserID: testFixtures.Author.ID, ExpiresAt: now.Add(time.Hour)}
	expired := &Session{Key: "expired-key", UserID: testFixtures.Reader.ID, ExpiresAt: now.Add(-time.Hour)}
	for _, s := range []*Session{active, expired} {
		if err := repo.CreateSession(ctx, s); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	got, err := repo.ActiveSession(ctx, active.Key, now)
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if got == nil || got.User == nil || got.User.ID != testFixtures.Author.ID {
		t.Fatalf("expected active session with author, got %+v", got)
	}

	got, err = repo.ActiveSession(ctx, expired.Key, now)
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil for expired session, got %+v, %v", got, err)
	}

	n, err := repo.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired session removed, got %d", n)
	}

	if err := repo.DeleteSession(ctx, active.Key); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	got, err = repo.ActiveSession(ctx, active.Key, now)
	if err != nil || got != nil {
		t.Fatalf("expected session to be gone, got %+v, %v", got, err)
	}
}
