package preference

import (
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// otherActionLabel groups every action type outside the known set.
const otherActionLabel = "other"

var (
	PreferenceUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_updates_total",
			Help: "Count of preference actions by action_type (view, add to cart, purchase, other) and outcome (learned, skipped).",
		},
		[]string{"action_type", "outcome"},
	)

	PriceToleranceObserved = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "preference_price_tolerance",
			Help:    "Price tolerance of profiles after each recorded action.",
			Buckets: prometheus.LinearBuckets(0.05, 0.1, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(PreferenceUpdatesTotal, PriceToleranceObserved)
}

// actionLabel keeps the action_type label set fixed whatever clients send.
func actionLabel(actionType string) string {
	switch actionType {
	case domain.ActionView, domain.ActionAddToCart, domain.ActionPurchase:
		return actionType
	default:
		return otherActionLabel
	}
}
