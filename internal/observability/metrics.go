// Package observability holds application-level metrics and tracing helpers.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts event requests accepted by the API.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "talento_posts_created_total",
		Help: "Total number of event request posts created",
	})

	// PostsDeleted counts posts removed along with their comment threads.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "talento_posts_deleted_total",
		Help: "Total number of event request posts deleted",
	})

	// CommentsCreated counts comments accepted by the API.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "talento_comments_created_total",
		Help: "Total number of comments created",
	})

	// PortfolioSaves counts performer profile create-or-update operations.
	PortfolioSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "talento_portfolio_saves_total",
		Help: "Total number of performer portfolio saves",
	})

	// ValidationFailures counts requests rejected by input validation, by resource.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "talento_validation_failures_total",
		Help: "Total number of requests rejected by validation",
	}, []string{"resource"})

	// RedisErrors counts cache operations that failed and fell through to the database.
	RedisErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "talento_redis_errors_total",
		Help: "Total number of Redis operations that returned an error",
	})
)
