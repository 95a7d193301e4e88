package usecase

import (
	"context"
	"errors"
	"time"

	"car_subscriptions/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase car_subscriptions/internal/usecase SubscriptionRepository,CarGateway

var (
	ErrInvalidPeriod         = errors.New("invalid period")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrNoSubscriptions       = errors.New("subscriptions not found")
	ErrNoActiveSubscriptions = errors.New("currently, there are no active subscriptions")
	ErrInvalidSubscription   = errors.New("invalid subscription")
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidPagination     = errors.New("invalid pagination")
)

var (
	ErrIncompleteSubscription   = errors.New("no car id, start date or end date found")
	ErrMissingCarReference      = errors.New("no car id found")
	ErrAvailabilityUndetermined = errors.New("could not calculate is_available")
	ErrAuthFailed               = errors.New("authentication failed")
	ErrUpstreamUnavailable      = errors.New("car service unavailable")
	ErrUpstreamTimeout          = errors.New("car service timeout")
)

const maxListLimit = 200

// SubFilter - common filter for queries/aggregations
type SubFilter struct {
	// ActiveOn - keep subscriptions whose window contains this day
	ActiveOn *time.Time
	// Limit - maximum number of records in the response, 0 means no limit
	Limit int
	// Offset - result set offset
	Offset int
}

// SubscriptionRepository - CRUD for subscriptions plus queries/aggregations
type SubscriptionRepository interface {
	// SaveSub - save a subscription, the store assigns the ID
	SaveSub(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	// UpdateSub - write the patched fields of a subscription
	UpdateSub(ctx context.Context, id int64, p entity.SubscriptionPatch) error
	// DeleteSub - delete a subscription
	DeleteSub(ctx context.Context, id int64) error
	// GetSubByID - get a subscription by ID
	GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error)
	// ListSubsByFilter - list subscriptions using SubFilter
	ListSubsByFilter(ctx context.Context, f SubFilter) ([]*entity.Subscription, error)
	// CostSubsByFilter - total monthly price of subscriptions matching SubFilter
	CostSubsByFilter(ctx context.Context, f SubFilter) (float64, error)
}

// CarGateway - authenticated access to the upstream car service
type CarGateway interface {
	// EnsureAuthenticated - log in unless the held session still looks valid
	EnsureAuthenticated(ctx context.Context) error
	// ResetSession - drop the held session so the next call logs in again
	ResetSession()
	// PatchCar - send a partial car update, the upstream answer is returned as is
	PatchCar(ctx context.Context, carID int64, patch entity.CarPatch) (*entity.UpstreamResponse, error)
	// GetCar - fetch a car, the upstream answer is returned as is
	GetCar(ctx context.Context, carID int64) (*entity.UpstreamResponse, error)
}
