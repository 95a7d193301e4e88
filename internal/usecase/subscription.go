package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"car_subscriptions/internal/availability"
	"car_subscriptions/internal/entity"
)

// Subscription coordinates subscription use cases via the repository
type Subscription struct {
	Sr  SubscriptionRepository
	Now func() time.Time
}

// NewSubscription creates a use case service with the given repository
func NewSubscription(sr SubscriptionRepository) *Subscription {
	return &Subscription{
		Sr:  sr,
		Now: time.Now,
	}
}

// RegisterSub validates/normalizes and saves a new subscription
func (s *Subscription) RegisterSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if err := validateAndNormalize(sub); err != nil {
		return nil, err
	}
	created, err := s.Sr.SaveSub(ctx, sub)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateSub applies a partial update to an existing subscription and returns the fresh copy
func (s *Subscription) UpdateSub(ctx context.Context, id int64, patch entity.SubscriptionPatch) (*entity.Subscription, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	existing, err := s.Sr.GetSubByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return existing, nil
	}

	merged := patch.Apply(*existing)
	if err := validateAndNormalize(&merged); err != nil {
		return nil, err
	}
	if patch.StartDate != nil {
		patch.StartDate = merged.StartDate
	}
	if patch.EndDate != nil {
		patch.EndDate = merged.EndDate
	}
	if patch.DeliveryLocation != nil {
		patch.DeliveryLocation = merged.DeliveryLocation
	}

	if err := s.Sr.UpdateSub(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.Sr.GetSubByID(ctx, id)
}

// DeleteSub removes a subscription by ID and returns the previously stored record
func (s *Subscription) DeleteSub(ctx context.Context, ID int64) (*entity.Subscription, error) {
	if ID <= 0 {
		return nil, ErrInvalidID
	}

	existing, err := s.Sr.GetSubByID(ctx, ID)
	if err != nil {
		return nil, err
	}
	if err := s.Sr.DeleteSub(ctx, ID); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetSubByID fetches a subscription by its ID
func (s *Subscription) GetSubByID(ctx context.Context, ID int64) (*entity.Subscription, error) {
	if ID <= 0 {
		return nil, ErrInvalidID
	}
	return s.Sr.GetSubByID(ctx, ID)
}

// ListSubs returns every subscription matching the pagination in filter
func (s *Subscription) ListSubs(ctx context.Context, filter SubFilter) ([]*entity.Subscription, error) {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	subs, err := s.Sr.ListSubsByFilter(ctx, nf)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, ErrNoSubscriptions
	}
	return subs, nil
}

// ListActiveSubs returns the subscriptions whose window contains today
func (s *Subscription) ListActiveSubs(ctx context.Context) ([]*entity.Subscription, error) {
	today := availability.Day(s.Now())
	subs, err := s.Sr.ListSubsByFilter(ctx, SubFilter{ActiveOn: &today})
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, ErrNoActiveSubscriptions
	}
	return subs, nil
}

// ActiveSubsTotalPrice sums the monthly price of today's active subscriptions, 0 when none
func (s *Subscription) ActiveSubsTotalPrice(ctx context.Context) (float64, error) {
	today := availability.Day(s.Now())
	return s.Sr.CostSubsByFilter(ctx, SubFilter{ActiveOn: &today})
}

// validateAndNormalize enforces business rules and truncates dates to the calendar day
func validateAndNormalize(sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSubscription)
	}
	if sub.DurationMonths == 0 {
		sub.DurationMonths = entity.DefaultDurationMonths
	}
	if sub.DurationMonths < 0 {
		return fmt.Errorf("%w: subscription_duration_months must be > 0", ErrInvalidSubscription)
	}
	if sub.CarID != nil && *sub.CarID <= 0 {
		return fmt.Errorf("%w: car_id must be > 0", ErrInvalidSubscription)
	}
	if sub.KmDriven != nil && *sub.KmDriven < 0 {
		return fmt.Errorf("%w: km_driven_during_subscription must be >= 0", ErrInvalidSubscription)
	}
	if sub.ContractedKm != nil && *sub.ContractedKm < 0 {
		return fmt.Errorf("%w: contracted_km must be >= 0", ErrInvalidSubscription)
	}
	if sub.MonthlyPrice != nil && *sub.MonthlyPrice < 0 {
		return fmt.Errorf("%w: monthly_subscription_price must be >= 0", ErrInvalidSubscription)
	}
	if sub.DeliveryLocation != nil {
		loc := strings.TrimSpace(*sub.DeliveryLocation)
		sub.DeliveryLocation = &loc
	}

	if sub.StartDate != nil {
		d := availability.Day(*sub.StartDate)
		sub.StartDate = &d
	}
	if sub.EndDate != nil {
		d := availability.Day(*sub.EndDate)
		sub.EndDate = &d
	}
	if sub.StartDate != nil && sub.EndDate != nil && sub.EndDate.Before(*sub.StartDate) {
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidPeriod)
	}
	return nil
}

// normalizeFilter validates pagination
func normalizeFilter(f SubFilter) (SubFilter, error) {
	if f.Offset < 0 {
		return f, fmt.Errorf("%w: offset must be >= 0", ErrInvalidPagination)
	}
	if f.Limit < 0 {
		return f, fmt.Errorf("%w: limit must be >= 0", ErrInvalidPagination)
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.ActiveOn != nil {
		d := availability.Day(*f.ActiveOn)
		f.ActiveOn = &d
	}
	return f, nil
}
