package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"car_subscriptions/internal/availability"
	"car_subscriptions/internal/entity"
)

// CarAvailability pushes the is_available flag of a car to the car service
// whenever a subscription's dates are created or changed.
type CarAvailability struct {
	Cars CarGateway
	Now  func() time.Time
	log  *slog.Logger
}

// NewCarAvailability creates the notifier on top of an authenticated car gateway
func NewCarAvailability(cars CarGateway, log *slog.Logger) *CarAvailability {
	if log == nil {
		log = slog.Default()
	}
	return &CarAvailability{
		Cars: cars,
		Now:  time.Now,
		log:  log,
	}
}

// Push derives the flag from the subscription window and sends it to the car.
// Non-2xx answers from the car service are returned as is, not as errors.
func (n *CarAvailability) Push(ctx context.Context, req entity.CarAvailabilityRequest) (*entity.UpstreamResponse, error) {
	if req.CarID == nil || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrIncompleteSubscription
	}

	isAvailable, err := availability.Compute(req.StartDate, req.EndDate, n.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAvailabilityUndetermined, err)
	}

	patch := entity.CarPatch{IsAvailable: isAvailable}
	resp, err := n.withSession(ctx, *req.CarID, func() (*entity.UpstreamResponse, error) {
		return n.Cars.PatchCar(ctx, *req.CarID, patch)
	})
	if err != nil {
		return nil, err
	}

	n.log.Info("car availability pushed",
		slog.Int64("car_id", *req.CarID),
		slog.Bool("is_available", isAvailable),
		slog.Int("upstream_status", resp.Status),
	)
	return resp, nil
}

// CarInfo fetches the car referenced by a subscription from the car service
func (n *CarAvailability) CarInfo(ctx context.Context, sub *entity.Subscription) (*entity.UpstreamResponse, error) {
	if sub == nil || sub.CarID == nil {
		return nil, ErrMissingCarReference
	}
	return n.withSession(ctx, *sub.CarID, func() (*entity.UpstreamResponse, error) {
		return n.Cars.GetCar(ctx, *sub.CarID)
	})
}

// withSession runs call on an authenticated session. When the upstream
// answers 401 the session is dropped, renewed and call is retried once.
func (n *CarAvailability) withSession(ctx context.Context, carID int64, call func() (*entity.UpstreamResponse, error)) (*entity.UpstreamResponse, error) {
	if err := n.Cars.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}
	resp, err := call()
	if err != nil || resp == nil || resp.Status != http.StatusUnauthorized {
		return resp, err
	}

	n.log.Warn("car service rejected session, retrying", slog.Int64("car_id", carID))
	n.Cars.ResetSession()
	if err := n.Cars.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}
	return call()
}
