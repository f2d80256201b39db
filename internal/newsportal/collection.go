package newsportal

import "github.com/K-u-n-i-n/ya-news/internal/db"

type NewsList []News

type Comments []Comment

func NewNewsList(in []db.News) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNews(&in[i])
	}
	return out
}

func NewComments(in []db.Comment) Comments {
	out := make(Comments, len(in))
	for i := range in {
		out[i] = NewComment(&in[i])
	}
	return out
}

