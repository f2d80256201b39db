package rpc

import (
	"log/slog"
	"net/http"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/K-u-n-i-n/ya-news/internal/newsportal"
)

// New returns the JSON-RPC 2.0 server with the news namespace registered.
func New(logger *slog.Logger, newsManager newsportal.IManager) http.Handler {
	rpcService := NewNewsService(newsManager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "ya-news", nil))

	return rpcServer
}
