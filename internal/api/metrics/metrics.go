// Package metrics defines the blog's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings.
//
// Collectors are created unregistered; call Register once at startup with the
// registry that also backs the /metrics endpoint.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "blog"

// ── Account metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accounts created through /register.
var UsersRegisteredTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_email", or "wrong_password"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AdminDeniedTotal counts requests rejected by the admin guard.
var AdminDeniedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_denied_total",
		Help:      "Total number of requests rejected by the admin guard.",
	},
)

// ── Content metrics ──────────────────────────────────────────────────────────

// PostChangesTotal counts successful post mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var PostChangesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_changes_total",
		Help:      "Total number of post mutations, by action.",
	},
	[]string{"action"},
)

// CommentsCreatedTotal counts comments stored.
var CommentsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ContactMessagesTotal counts contact form submissions handed to the mailer.
// Label:
//   - result: "sent" or "failed"
var ContactMessagesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages, by delivery result.",
	},
	[]string{"result"},
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		UsersRegisteredTotal,
		LoginsTotal,
		AdminDeniedTotal,
		PostChangesTotal,
		CommentsCreatedTotal,
		ContactMessagesTotal,
	}
}

// Register adds every blog collector to reg.
func Register(reg prometheus.Registerer) error {
	var errs []error
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
