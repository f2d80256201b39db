package rest

import "time"

type News struct {
	NewsID int       `json:"newsId"`
	Title  string    `json:"title"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}

type Author struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	NewsID    int       `json:"newsId"`
	Author    Author    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsDetail struct {
	News
	Comments []Comment `json:"comments"`
}

// NewsFilter is decoded from the query string of GET /api/v1/news.
type NewsFilter struct {
	Limit int
}
