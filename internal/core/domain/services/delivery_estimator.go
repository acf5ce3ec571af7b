package services

import (
	"time"

	"courier/internal/pkg/errs"
)

const (
	// estimateMin is how soon the courier is expected to reach the customer.
	estimateMin = 15 * time.Minute
	// estimateMax is the latest point of the promised delivery window.
	estimateMax = 30 * time.Minute
)

// DeliveryWindow is the promised delivery interval shown on the order detail.
// From and To are absolute times derived from the moment of display; the
// window is a display derivation only and is never persisted or recomputed.
type DeliveryWindow struct {
	From time.Time
	To   time.Time
}

// Width returns the duration of the window.
func (w DeliveryWindow) Width() time.Duration {
	return w.To.Sub(w.From)
}

// DeliveryEstimator derives the estimated delivery window for an accepted
// order. The console has no routing data, so the estimate is the fixed
// 15-to-30-minutes-from-now interval the original console promises.
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a delivery estimator.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// Window returns [now + 15m, now + 30m].
// The window is always exactly 15 minutes wide and starts 15 minutes after now.
func (DeliveryEstimator) Window(now time.Time) (DeliveryWindow, error) {
	if now.IsZero() {
		return DeliveryWindow{}, errs.NewValueIsRequiredError("now")
	}

	return DeliveryWindow{
		From: now.Add(estimateMin),
		To:   now.Add(estimateMax),
	}, nil
}
