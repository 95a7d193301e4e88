package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "car_subscriptions/docs"
	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/entity/generated"
	"car_subscriptions/internal/gateways/http/mw"
	"car_subscriptions/internal/usecase"
)

const (
	roleAdmin   = "admin"
	roleFinance = "finance"
	roleSales   = "sales"
)

var (
	rolesList        = []string{roleAdmin, roleFinance, roleSales}
	rolesSales       = []string{roleAdmin, roleSales}
	rolesAdmin       = []string{roleAdmin}
	rolesFinance     = []string{roleAdmin, roleFinance}
	msgSubNotFound   = gin.H{"message": "Subscription not found"}
	msgInvalidID     = gin.H{"error": "invalid id"}
	msgAuthFailed    = gin.H{"message": "Authentication failed"}
	msgNoCarID       = gin.H{"message": "No car id found"}
	msgIncompleteSub = gin.H{"message": "No car id, start date or end date found"}
)

type endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
	Roles       string `json:"role_required"`
}

func ep(method, path, descr string, roles []string) endpoint {
	return endpoint{Path: path, Method: method, Description: descr, Roles: strings.Join(roles, ", ")}
}

var catalogue = []endpoint{
	ep(http.MethodGet, "/subscriptions", "Retrieve a list of subscriptions", rolesList),
	ep(http.MethodGet, "/subscriptions/{id}", "Retrieve a specific subscription by ID", rolesSales),
	ep(http.MethodGet, "/subscriptions/current", "Retrieve a list of current active subscriptions", rolesAdmin),
	ep(http.MethodGet, "/subscriptions/current/total-price", "Retrieve the total price of current active subscriptions", rolesFinance),
	ep(http.MethodGet, "/subscriptions/{id}/car", "Retrieve car information for a specific subscription by ID", rolesSales),
	ep(http.MethodPost, "/subscriptions", "Add a new subscription", rolesSales),
	ep(http.MethodPatch, "/subscriptions/{id}", "Update an existing subscription", rolesSales),
	ep(http.MethodDelete, "/subscriptions/{id}", "Delete a subscription by ID", rolesSales),
}

// outcome - one step of a write: the store result or the car availability push
type outcome struct {
	Status int `json:"status"`
	Result any `json:"result"`
}

func setupRouter(r *gin.Engine, u UseCases, gate *mw.RoleGate) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	setupService(r)

	subs := r.Group("/subscriptions")
	setupSubscriptions(subs, u, gate)
	setupCurrent(subs, u, gate)
	setupSubscriptionsID(subs, u, gate)
}

func setupService(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "Subscriptions Microservice",
			"description": "This microservice handles subscription-related operations such as adding, updating, deleting, and retrieving subscriptions.",
			"endpoints":   catalogue,
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func setupSubscriptions(r *gin.RouterGroup, u UseCases, gate *mw.RoleGate) {
	r.GET("", gate.RequireRoles(rolesList...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}

		var f usecase.SubFilter
		if s := c.Query("limit"); s != "" {
			limit, err := strconv.Atoi(s)
			if err != nil || limit < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit"})
				return
			}
			f.Limit = limit
		}
		if s := c.Query("offset"); s != "" {
			offset, err := strconv.Atoi(s)
			if err != nil || offset < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid offset"})
				return
			}
			f.Offset = offset
		}

		subs, err := u.Sub.ListSubs(c.Request.Context(), f)
		switch {
		case errors.Is(err, usecase.ErrNoSubscriptions):
			c.JSON(http.StatusNotFound, gin.H{"message": "Subscriptions not found"})
			return
		case errors.Is(err, usecase.ErrInvalidPagination):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid pagination"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toModels(subs))
	})

	r.POST("", gate.RequireRoles(rolesSales...), func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireContentJSON(c) {
			return
		}

		var input generated.SubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		created, err := u.Sub.RegisterSub(c.Request.Context(), fromInput(input))
		switch {
		case errors.Is(err, usecase.ErrInvalidSubscription), errors.Is(err, usecase.ErrInvalidPeriod):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{
				"subscription": outcome{Status: http.StatusInternalServerError, Result: gin.H{"error": err.Error()}},
			})
			return
		}

		// the write stands whatever the push returns
		c.JSON(http.StatusCreated, gin.H{
			"subscription": outcome{
				Status: http.StatusCreated,
				Result: gin.H{"message": "New subscription added to database", "subscription_id": created.ID},
			},
			"car_update": pushAvailability(c.Request.Context(), u.Cars, created),
		})
	})
}

func setupCurrent(r *gin.RouterGroup, u UseCases, gate *mw.RoleGate) {
	r.GET("/current", gate.RequireRoles(rolesAdmin...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		subs, err := u.Sub.ListActiveSubs(c.Request.Context())
		switch {
		case errors.Is(err, usecase.ErrNoActiveSubscriptions):
			c.JSON(http.StatusNotFound, gin.H{"message": "Currently, there are no active subscriptions"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toModels(subs))
	})

	r.GET("/current/total-price", gate.RequireRoles(rolesFinance...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		total, err := u.Sub.ActiveSubsTotalPrice(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_price": total})
	})
}

func setupSubscriptionsID(r *gin.RouterGroup, u UseCases, gate *mw.RoleGate) {
	r.GET("/:id", gate.RequireRoles(rolesSales...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		sub, err := u.Sub.GetSubByID(c.Request.Context(), id)
		if !writeLookupError(c, err) {
			return
		}
		c.JSON(http.StatusOK, toModel(sub))
	})

	r.GET("/:id/car", gate.RequireRoles(rolesSales...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		sub, err := u.Sub.GetSubByID(c.Request.Context(), id)
		if !writeLookupError(c, err) {
			return
		}

		car, err := u.Cars.CarInfo(c.Request.Context(), sub)
		if err != nil {
			out := carError(err)
			c.JSON(out.Status, out.Result)
			return
		}
		c.Data(car.Status, "application/json; charset=utf-8", car.Body)
	})

	r.PATCH("/:id", gate.RequireRoles(rolesSales...), func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireContentJSON(c) {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		var input generated.SubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		patch := patchFromInput(input)
		updated, err := u.Sub.UpdateSub(c.Request.Context(), id, patch)
		switch {
		case errors.Is(err, usecase.ErrInvalidSubscription), errors.Is(err, usecase.ErrInvalidPeriod):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		case !writeLookupError(c, err):
			return
		}

		resp := gin.H{
			"subscription": outcome{
				Status: http.StatusCreated,
				Result: gin.H{"message": "Subscription updated successfully.", "subscription_id": updated.ID},
			},
		}
		if patch.TouchesAvailability() {
			resp["car_update"] = pushAvailability(c.Request.Context(), u.Cars, updated)
		}
		c.JSON(http.StatusCreated, resp)
	})

	r.DELETE("/:id", gate.RequireRoles(rolesSales...), func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}

		deleted, err := u.Sub.DeleteSub(c.Request.Context(), id)
		if !writeLookupError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully.", "subscription_id": deleted.ID})
	})
}

// pushAvailability runs the car push for a stored subscription and folds any failure
// into the reported outcome.
func pushAvailability(ctx context.Context, cars *usecase.CarAvailability, sub *entity.Subscription) outcome {
	resp, err := cars.Push(ctx, sub.AvailabilityRequest())
	if err != nil {
		return carError(err)
	}
	return outcome{Status: resp.Status, Result: resp.Body}
}

func carError(err error) outcome {
	switch {
	case errors.Is(err, usecase.ErrIncompleteSubscription):
		return outcome{Status: http.StatusNotFound, Result: msgIncompleteSub}
	case errors.Is(err, usecase.ErrAvailabilityUndetermined):
		return outcome{Status: http.StatusNotFound, Result: gin.H{"message": "Could not calculate is_available: " + err.Error()}}
	case errors.Is(err, usecase.ErrMissingCarReference):
		return outcome{Status: http.StatusNotFound, Result: msgNoCarID}
	case errors.Is(err, usecase.ErrAuthFailed):
		return outcome{Status: http.StatusUnauthorized, Result: msgAuthFailed}
	case errors.Is(err, usecase.ErrUpstreamTimeout):
		return outcome{Status: http.StatusGatewayTimeout, Result: gin.H{"message": "Car service timed out"}}
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return outcome{Status: http.StatusBadGateway, Result: gin.H{"message": "Car service unavailable"}}
	default:
		return outcome{Status: http.StatusInternalServerError, Result: gin.H{"error": err.Error()}}
	}
}

// writeLookupError writes the response for a failed id lookup and reports whether
// the handler may go on.
func writeLookupError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, msgInvalidID)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, msgSubNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
	return false
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, msgInvalidID)
		return 0, false
	}
	return id, true
}

func fromInput(in generated.SubscriptionInput) *entity.Subscription {
	sub := &entity.Subscription{
		CarID:            in.CarID,
		StartDate:        dateValue(in.SubscriptionStartDate),
		EndDate:          dateValue(in.SubscriptionEndDate),
		KmDriven:         in.KmDrivenDuringSubscription,
		ContractedKm:     in.ContractedKm,
		MonthlyPrice:     in.MonthlySubscriptionPrice,
		DeliveryLocation: in.DeliveryLocation,
	}
	if in.SubscriptionDurationMonths != nil {
		sub.DurationMonths = *in.SubscriptionDurationMonths
	}
	if in.HasDeliveryInsurance != nil {
		sub.HasDeliveryInsurance = *in.HasDeliveryInsurance
	}
	return sub
}

func patchFromInput(in generated.SubscriptionInput) entity.SubscriptionPatch {
	return entity.SubscriptionPatch{
		CarID:                in.CarID,
		StartDate:            dateValue(in.SubscriptionStartDate),
		EndDate:              dateValue(in.SubscriptionEndDate),
		DurationMonths:       in.SubscriptionDurationMonths,
		KmDriven:             in.KmDrivenDuringSubscription,
		ContractedKm:         in.ContractedKm,
		MonthlyPrice:         in.MonthlySubscriptionPrice,
		DeliveryLocation:     in.DeliveryLocation,
		HasDeliveryInsurance: in.HasDeliveryInsurance,
	}
}

func toModel(s *entity.Subscription) *generated.Subscription {
	duration := s.DurationMonths
	insurance := s.HasDeliveryInsurance
	return &generated.Subscription{
		SubscriptionInput: generated.SubscriptionInput{
			CarID:                      s.CarID,
			ContractedKm:               s.ContractedKm,
			DeliveryLocation:           s.DeliveryLocation,
			HasDeliveryInsurance:       &insurance,
			KmDrivenDuringSubscription: s.KmDriven,
			MonthlySubscriptionPrice:   s.MonthlyPrice,
			SubscriptionDurationMonths: &duration,
			SubscriptionEndDate:        modelDate(s.EndDate),
			SubscriptionStartDate:      modelDate(s.StartDate),
		},
		SubscriptionID: generated.SubscriptionID{ID: s.ID},
	}
}

func toModels(subs []*entity.Subscription) []*generated.Subscription {
	out := make([]*generated.Subscription, 0, len(subs))
	for _, s := range subs {
		out = append(out, toModel(s))
	}
	return out
}

func dateValue(d *strfmt.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

func modelDate(t *time.Time) *strfmt.Date {
	if t == nil {
		return nil
	}
	d := strfmt.Date(*t)
	return &d
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" || mt == "application/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}

func requireContentJSON(c *gin.Context) bool {
	if ct := c.ContentType(); ct == "" || ct == "application/json" {
		return true
	}
	c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
	return false
}
