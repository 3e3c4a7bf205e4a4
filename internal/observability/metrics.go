package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forumapi_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// UsersRegistered counts successful user registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forumapi_users_registered_total",
		Help: "Total number of registered users",
	})

	// ThreadsCreated counts created threads.
	ThreadsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forumapi_threads_created_total",
		Help: "Total number of created threads",
	})

	// CommentsCreated counts created comments and replies by kind.
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forumapi_comments_created_total",
		Help: "Total number of created comments and replies",
	}, []string{"kind"})

	// LikesToggled counts like toggles by resulting direction.
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forumapi_likes_toggled_total",
		Help: "Total number of comment like toggles",
	}, []string{"direction"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
