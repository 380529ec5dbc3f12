// Package observability provides metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthFailures counts failed authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_auth_failures_total",
		Help: "Total number of failed authentication attempts by reason",
	}, []string{"reason"})

	// FriendRequestOutcomes counts friend-request operations by outcome.
	FriendRequestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_friend_request_outcomes_total",
		Help: "Total number of friend request operations by outcome",
	}, []string{"operation", "outcome"})

	// LikeToggles counts like toggles by resulting state.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})
)
