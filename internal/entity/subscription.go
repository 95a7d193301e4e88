package entity

import (
	"encoding/json"
	"time"
)

// DefaultDurationMonths - subscription length used when the caller does not send one
const DefaultDurationMonths int64 = 3

// Subscription - stored car rental subscription
type Subscription struct {
	// ID - store-assigned identifier, never reused
	ID int64
	// CarID - reference to the car in the upstream car service
	CarID *int64
	// StartDate - first day of the subscription (inclusive)
	StartDate *time.Time
	// EndDate - last day of the subscription (inclusive)
	EndDate *time.Time
	// DurationMonths - informational length, not used to derive EndDate
	DurationMonths int64
	// KmDriven - kilometres driven during the subscription
	KmDriven *int64
	// ContractedKm - kilometres included in the contract
	ContractedKm *int64
	// MonthlyPrice - monthly subscription price
	MonthlyPrice *float64
	// DeliveryLocation - where the car is delivered
	DeliveryLocation *string
	// HasDeliveryInsurance - delivery insurance flag
	HasDeliveryInsurance bool
}

// SubscriptionPatch - partial update; nil fields are left untouched
type SubscriptionPatch struct {
	CarID                *int64
	StartDate            *time.Time
	EndDate              *time.Time
	DurationMonths       *int64
	KmDriven             *int64
	ContractedKm         *int64
	MonthlyPrice         *float64
	DeliveryLocation     *string
	HasDeliveryInsurance *bool
}

// Empty reports whether the patch changes nothing.
func (p SubscriptionPatch) Empty() bool {
	return p.CarID == nil && p.StartDate == nil && p.EndDate == nil && p.DurationMonths == nil &&
		p.KmDriven == nil && p.ContractedKm == nil && p.MonthlyPrice == nil &&
		p.DeliveryLocation == nil && p.HasDeliveryInsurance == nil
}

// TouchesAvailability reports whether the patch can change the car's availability.
func (p SubscriptionPatch) TouchesAvailability() bool {
	return p.CarID != nil || p.StartDate != nil || p.EndDate != nil
}

// Apply returns a copy of s with the patch applied.
func (p SubscriptionPatch) Apply(s Subscription) Subscription {
	if p.CarID != nil {
		s.CarID = p.CarID
	}
	if p.StartDate != nil {
		s.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		s.EndDate = p.EndDate
	}
	if p.DurationMonths != nil {
		s.DurationMonths = *p.DurationMonths
	}
	if p.KmDriven != nil {
		s.KmDriven = p.KmDriven
	}
	if p.ContractedKm != nil {
		s.ContractedKm = p.ContractedKm
	}
	if p.MonthlyPrice != nil {
		s.MonthlyPrice = p.MonthlyPrice
	}
	if p.DeliveryLocation != nil {
		s.DeliveryLocation = p.DeliveryLocation
	}
	if p.HasDeliveryInsurance != nil {
		s.HasDeliveryInsurance = *p.HasDeliveryInsurance
	}
	return s
}

// CarPatch - body of the availability update sent to the car service
type CarPatch struct {
	IsAvailable bool `json:"is_available"`
}

// CarAvailabilityRequest - fields the notifier needs; dates are YYYY-MM-DD, empty when unknown
type CarAvailabilityRequest struct {
	CarID     *int64
	StartDate string
	EndDate   string
}

// UpstreamResponse - status and JSON body returned by the car service
type UpstreamResponse struct {
	Status int
	Body   json.RawMessage
}
