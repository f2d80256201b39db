package rpc

import "github.com/K-u-n-i-n/ya-news/internal/newsportal"

func NewNews(n newsportal.News) News {
	return News{
		NewsID: n.ID,
		Title:  n.Title,
		Text:   n.Text,
		Date:   n.Date,
	}
}

func NewNewsList(in newsportal.NewsList) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(in[i])
	}
	return out
}

func NewComment(c newsportal.Comment) Comment {
	return Comment{
		CommentID: c.ID,
		NewsID:    c.NewsID,
		Author: Author{
			UserID:   c.Author.ID,
			Username: c.Author.Username,
		},
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func NewComments(in newsportal.Comments) Comments {
	out := make(Comments, len(in))
	for i := range in {
		out[i] = NewComment(in[i])
	}
	return out
}
