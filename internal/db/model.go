// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Comment struct {
		ID, NewsID, AuthorID, Text, CreatedAt string

		Author, News string
	}
	News struct {
		ID, Title, Text, Date string
	}
	Session struct {
		Key, UserID, ExpiresAt, CreatedAt string

		User string
	}
	User struct {
		ID, Username, PasswordHash, DateJoined string
	}
}{
	Comment: struct {
		ID, NewsID, AuthorID, Text, CreatedAt string

		Author, News string
	}{
		ID:        "commentId",
		NewsID:    "newsId",
		AuthorID:  "authorId",
		Text:      "text",
		CreatedAt: "createdAt",

		Author: "Author",
		News:   "News",
	},
	News: struct {
		ID, Title, Text, Date string
	}{
		ID:    "newsId",
		Title: "title",
		Text:  "text",
		Date:  "date",
	},
	Session: struct {
		Key, UserID, ExpiresAt, CreatedAt string

		User string
	}{
		Key:       "sessionKey",
		UserID:    "userId",
		ExpiresAt: "expiresAt",
		CreatedAt: "createdAt",

		User: "User",
	},
	User: struct {
		ID, Username, PasswordHash, DateJoined string
	}{
		ID:           "userId",
		Username:     "username",
		PasswordHash: "passwordHash",
		DateJoined:   "dateJoined",
	},
}

var Tables = struct {
	Comment struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	Session struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	Session: struct {
		Name, Alias string
	}{
		Name:  "sessions",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	NewsID    int       `pg:"newsId,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	Text      string    `pg:"text,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`

	Author *User `pg:"fk:authorId,rel:has-one"`
	News   *News `pg:"fk:newsId,rel:has-one"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID    int       `pg:"newsId,pk"`
	Title string    `pg:"title,use_zero"`
	Text  string    `pg:"text,use_zero"`
	Date  time.Time `pg:"date"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	Key       string    `pg:"sessionKey,pk"`
	UserID    int       `pg:"userId,use_zero"`
	ExpiresAt time.Time `pg:"expiresAt,use_zero"`
	CreatedAt time.Time `pg:"createdAt"`

	User *User `pg:"fk:userId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	DateJoined   time.Time `pg:"dateJoined"`
}
