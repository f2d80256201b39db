package rest

import "github.com/K-u-n-i-n/ya-news/internal/newsportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n newsportal.News) News {
	return News{
		NewsID: n.ID,
		Title:  n.Title,
		Text:   n.Text,
		Date:   n.Date,
	}
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

func NewNewsDetail(n newsportal.News, comments newsportal.Comments) NewsDetail {
	return NewsDetail{
		News:     NewNews(n),
		Comments: Map(comments, NewComment),
	}
}
