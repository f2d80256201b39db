package newsportal

import (
	"time"

	"github.com/K-u-n-i-n/ya-news/internal/db"
)

type News struct {
	db.News
}

type User struct {
	db.User
}

type Comment struct {
	db.Comment
	Author User
}

type Session struct {
	db.Session
	User User
}

// Config holds the tunables of the portal.
type Config struct {
	// NewsCountOnHomePage is the maximum number of news items on the home page.
	NewsCountOnHomePage int
	// SessionTTL is how long a login stays valid.
	SessionTTL time.Duration
}

const (
	DefaultNewsCountOnHomePage = 10
	DefaultSessionTTL          = 14 * 24 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.NewsCountOnHomePage < 1 {
		c.NewsCountOnHomePage = DefaultNewsCountOnHomePage
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	return c
}
