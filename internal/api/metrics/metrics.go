// Package metrics defines and registers the custom Prometheus metrics for
// the news API. It is the single source of truth for metric names, labels,
// and help strings; request-level metrics (latency, status codes) come from
// the echoprometheus middleware, not from here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsapi"

// LoginAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure" (absent user, inactive account and bad
//     password are indistinguishable on purpose)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts issued session tokens.
// Label:
//   - grant: "register", "login" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued, by grant type.",
	},
	[]string{"grant"},
)

// UsersCreatedTotal counts successful registrations.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// NewsCreatedTotal counts created articles.
// Label:
//   - published: "true" when the article was created already published
var NewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_created_total",
		Help:      "Total number of news articles created, by publication state.",
	},
	[]string{"published"},
)
