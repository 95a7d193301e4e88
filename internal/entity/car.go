package entity

import "car_subscriptions/internal/availability"

// AvailabilityRequest collects the fields of s that drive the car availability push.
func (s Subscription) AvailabilityRequest() CarAvailabilityRequest {
	req := CarAvailabilityRequest{CarID: s.CarID}
	if s.StartDate != nil {
		req.StartDate = s.StartDate.Format(availability.DateLayout)
	}
	if s.EndDate != nil {
		req.EndDate = s.EndDate.Format(availability.DateLayout)
	}
	return req
}
