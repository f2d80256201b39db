package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods for news and comments.
type NewsService struct {
	zenrpc.Service
	manager newsportal.IManager
}

func NewNewsService(manager newsportal.IManager) *NewsService {
	return &NewsService{manager: manager}
}

// List returns the newest news items sorted by date DESC.
//
//zenrpc:limit number of items, capped at the home page size
//zenrpc:return list of news
//zenrpc:400 limit must not be negative
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, limit *int) (NewsList, error) {
	l := 0
	if limit != nil {
		if *limit < 0 {
			return nil, zenrpc.NewStringError(400, "limit must not be negative")
		}
		l = *limit
	}

	list, err := s.manager.HomeNews(ctx, l)
	if err != nil {
		return nil, err
	}

	return NewNewsList(list), nil
}

// ByID retrieves a single news item.
//
//zenrpc:id news numeric ID
//zenrpc:return news item
//zenrpc:400 id must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) ByID(ctx context.Context, id int) (*News, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	n, err := s.manager.NewsByID(ctx, id)
	if errors.Is(err, newsportal.ErrNewsNotFound) {
		return nil, zenrpc.NewStringError(404, "news not found")
	} else if err != nil {
		return nil, err
	}

	news := NewNews(*n)
	return &news, nil
}

// Comments returns the comments of a news item sorted by createdAt ASC.
//
//zenrpc:newsId news numeric ID
//zenrpc:return list of comments
//zenrpc:400 newsId must be positive
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) Comments(ctx context.Context, newsId int) (Comments, error) {
	if newsId <= 0 {
		return nil, zenrpc.NewStringError(400, "newsId must be positive")
	}

	if _, err := s.manager.NewsByID(ctx, newsId); errors.Is(err, newsportal.ErrNewsNotFound) {
		return nil, zenrpc.NewStringError(404, "news not found")
	} else if err != nil {
		return nil, err
	}

	comments, err := s.manager.NewsComments(ctx, newsId)
	if err != nil {
		return nil, err
	}

	return NewComments(comments), nil
}
