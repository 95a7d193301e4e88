package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "car_subscriptions/internal/config"
	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/gateways/carapi"
	"car_subscriptions/internal/gateways/http/mw"
	"car_subscriptions/internal/usecase"
)

const testSecret = "test-secret"

var today = time.Date(2025, time.February, 1, 10, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// memRepo keeps subscriptions in memory
type memRepo struct {
	mu     sync.Mutex
	lastID int64
	subs   map[int64]entity.Subscription
}

func newMemRepo() *memRepo {
	return &memRepo{subs: map[int64]entity.Subscription{}}
}

func (m *memRepo) SaveSub(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	cp := *s
	cp.ID = m.lastID
	m.subs[cp.ID] = cp
	return &cp, nil
}

func (m *memRepo) UpdateSub(_ context.Context, id int64, p entity.SubscriptionPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subs[id]
	if !ok {
		return usecase.ErrSubscriptionNotFound
	}
	m.subs[id] = p.Apply(s)
	return nil
}

func (m *memRepo) DeleteSub(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subs[id]; !ok {
		return usecase.ErrSubscriptionNotFound
	}
	delete(m.subs, id)
	return nil
}

func (m *memRepo) GetSubByID(_ context.Context, id int64) (*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subs[id]
	if !ok {
		return nil, usecase.ErrSubscriptionNotFound
	}
	return &s, nil
}

func (m *memRepo) ListSubsByFilter(_ context.Context, f usecase.SubFilter) ([]*entity.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Subscription, 0)
	for _, s := range m.subs {
		if f.ActiveOn != nil && !activeOn(s, *f.ActiveOn) {
			continue
		}
		cp := s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) CostSubsByFilter(ctx context.Context, f usecase.SubFilter) (float64, error) {
	subs, _ := m.ListSubsByFilter(ctx, f)
	var total float64
	for _, s := range subs {
		if s.MonthlyPrice != nil {
			total += *s.MonthlyPrice
		}
	}
	return total, nil
}

func activeOn(s entity.Subscription, day time.Time) bool {
	return s.StartDate != nil && s.EndDate != nil && !day.Before(*s.StartDate) && !day.After(*s.EndDate)
}

// carService fakes the admin gateway in front of the car service
type carService struct {
	logins  atomic.Int32
	patches atomic.Int32

	mu        sync.Mutex
	lastCarID string
	lastPatch entity.CarPatch
}

func (f *carService) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /user/login", func(w http.ResponseWriter, r *http.Request) {
		f.logins.Add(1)
		http.SetCookie(w, &http.Cookie{Name: carapi.DefaultAuthCookie, Value: "session", Path: "/"})
		_, _ = w.Write([]byte(`{"message":"logged in"}`))
	})
	mux.HandleFunc("PATCH /car/cars/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.patches.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastCarID = r.PathValue("id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastPatch))
		_, _ = w.Write([]byte(`{"message":"Car updated"}`))
	})
	mux.HandleFunc("GET /car/cars/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"car_id":` + r.PathValue("id") + `,"brand":"Volvo"}`))
	})
	return mux
}

type testEnv struct {
	router *gin.Engine
	repo   *memRepo
	cars   *carService
}

func newTestEnv(t *testing.T, secret string) *testEnv {
	t.Helper()
	cars := &carService{}
	upstream := httptest.NewServer(cars.handler(t))
	t.Cleanup(upstream.Close)
	return newTestEnvWithUpstream(t, secret, cars, upstream.URL)
}

func newTestEnvWithUpstream(t *testing.T, secret string, cars *carService, url string) *testEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newMemRepo()

	client := carapi.NewClient(carapi.Config{
		BaseURL:  url,
		Email:    "admin@example.com",
		Password: "secret",
		Timeout:  2 * time.Second,
	}, log)

	sub := usecase.NewSubscription(repo)
	sub.Now = func() time.Time { return today }
	notifier := usecase.NewCarAvailability(client, log)
	notifier.Now = func() time.Time { return today }

	r := SetupGin(cfg.Config{Env: envTest, Auth: cfg.AuthConfig{SecretKey: secret}}, UseCases{Sub: sub, Cars: notifier}, log)
	return &testEnv{router: r, repo: repo, cars: cars}
}

func (e *testEnv) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type writeResponse struct {
	Subscription struct {
		Status int `json:"status"`
		Result struct {
			Message        string `json:"message"`
			SubscriptionID int64  `json:"subscription_id"`
		} `json:"result"`
	} `json:"subscription"`
	CarUpdate *struct {
		Status int             `json:"status"`
		Result json.RawMessage `json:"result"`
	} `json:"car_update"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

const car42 = `{
	"car_id": 42,
	"subscription_start_date": "2025-01-01",
	"subscription_end_date": "2025-03-31",
	"km_driven_during_subscription": 120,
	"contracted_km": 3000,
	"monthly_subscription_price": 399.5,
	"delivery_location": "Copenhagen"
}`

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, "")
	for _, m := range []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead,
		http.MethodOptions, http.MethodPatch, http.MethodTrace,
	} {
		t.Run(m, func(t *testing.T) {
			w := env.do(m, "/unknown", "")
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestServiceRoutes(t *testing.T) {
	env := newTestEnv(t, testSecret)

	t.Run("service_info_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, w.Code)
		info := decode[struct {
			Service   string     `json:"service"`
			Endpoints []endpoint `json:"endpoints"`
		}](t, w)
		assert.Equal(t, "Subscriptions Microservice", info.Service)
		assert.Len(t, info.Endpoints, 8)
		assert.Equal(t, "admin, finance, sales", info.Endpoints[0].Roles)
	})

	t.Run("health_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("metrics_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http_requests_total")
	})

	t.Run("request_id_header", func(t *testing.T) {
		w := env.do(http.MethodGet, "/health", "", mw.HeaderRequestID, "rid-1")
		assert.Equal(t, "rid-1", w.Header().Get(mw.HeaderRequestID))
		w = env.do(http.MethodGet, "/health", "")
		assert.NotEmpty(t, w.Header().Get(mw.HeaderRequestID))
	})

	t.Run("wrong_method_405", func(t *testing.T) {
		w := env.do(http.MethodPut, "/subscriptions/1", `{}`)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestCreateSubscription(t *testing.T) {
	t.Run("active_window_pushes_reserved_car", func(t *testing.T) {
		env := newTestEnv(t, "")
		w := env.do(http.MethodPost, "/subscriptions", car42)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[writeResponse](t, w)
		assert.Equal(t, http.StatusCreated, resp.Subscription.Status)
		assert.Equal(t, "New subscription added to database", resp.Subscription.Result.Message)
		assert.Equal(t, int64(1), resp.Subscription.Result.SubscriptionID)
		require.NotNil(t, resp.CarUpdate)
		assert.Equal(t, http.StatusOK, resp.CarUpdate.Status)
		assert.JSONEq(t, `{"message":"Car updated"}`, string(resp.CarUpdate.Result))

		assert.Equal(t, int32(1), env.cars.logins.Load())
		assert.Equal(t, int32(1), env.cars.patches.Load())
		env.cars.mu.Lock()
		assert.Equal(t, "42", env.cars.lastCarID)
		assert.False(t, env.cars.lastPatch.IsAvailable)
		env.cars.mu.Unlock()

		stored, err := env.repo.GetSubByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultDurationMonths, stored.DurationMonths)
		assert.False(t, stored.HasDeliveryInsurance)
	})

	t.Run("session_reused_across_requests", func(t *testing.T) {
		env := newTestEnv(t, "")
		for range 3 {
			w := env.do(http.MethodPost, "/subscriptions", car42)
			require.Equal(t, http.StatusCreated, w.Code)
		}
		assert.Equal(t, int32(1), env.cars.logins.Load())
		assert.Equal(t, int32(3), env.cars.patches.Load())
	})

	t.Run("missing_car_id_skips_push", func(t *testing.T) {
		env := newTestEnv(t, "")
		w := env.do(http.MethodPost, "/subscriptions",
			`{"subscription_start_date":"2025-01-01","subscription_end_date":"2025-03-31"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[writeResponse](t, w)
		require.NotNil(t, resp.CarUpdate)
		assert.Equal(t, http.StatusNotFound, resp.CarUpdate.Status)
		assert.JSONEq(t, `{"message":"No car id, start date or end date found"}`, string(resp.CarUpdate.Result))
		assert.Zero(t, env.cars.logins.Load())
		assert.Zero(t, env.cars.patches.Load())
	})

	t.Run("car_service_down_keeps_write", func(t *testing.T) {
		down := httptest.NewServer(http.NotFoundHandler())
		url := down.URL
		down.Close()
		env := newTestEnvWithUpstream(t, "", &carService{}, url)

		w := env.do(http.MethodPost, "/subscriptions", car42)
		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[writeResponse](t, w)
		require.NotNil(t, resp.CarUpdate)
		assert.Equal(t, http.StatusBadGateway, resp.CarUpdate.Status)

		_, err := env.repo.GetSubByID(context.Background(), resp.Subscription.Result.SubscriptionID)
		assert.NoError(t, err)
	})

	t.Run("bad_requests", func(t *testing.T) {
		env := newTestEnv(t, "")
		tests := []struct {
			name    string
			body    string
			headers []string
			want    int
		}{
			{"malformed_json_400", `{"car_id":`, nil, http.StatusBadRequest},
			{"bad_date_400", `{"subscription_start_date":"2025-13-01"}`, nil, http.StatusBadRequest},
			{"negative_km_422", `{"contracted_km":-1}`, nil, http.StatusUnprocessableEntity},
			{"car_id_zero_422", `{"car_id":0}`, nil, http.StatusUnprocessableEntity},
			{"start_after_end_422", `{"subscription_start_date":"2025-04-01","subscription_end_date":"2025-03-01"}`, nil, http.StatusUnprocessableEntity},
			{"xml_accept_406", car42, []string{"Accept", "application/xml"}, http.StatusNotAcceptable},
			{"xml_body_415", car42, []string{"Content-Type", "application/xml"}, http.StatusUnsupportedMediaType},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := env.do(http.MethodPost, "/subscriptions", tt.body, tt.headers...)
				assert.Equal(t, tt.want, w.Code, w.Body.String())
			})
		}
		assert.Zero(t, env.cars.patches.Load())
	})
}

func TestGetSubscriptions(t *testing.T) {
	env := newTestEnv(t, "")

	t.Run("empty_404", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Subscriptions not found"}`, w.Body.String())

		w = env.do(http.MethodGet, "/subscriptions/current", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/subscriptions", car42).Code)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/subscriptions",
		`{"car_id":7,"subscription_start_date":"2024-01-01","subscription_end_date":"2024-06-30","monthly_subscription_price":250}`).Code)

	t.Run("list_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions", "")
		require.Equal(t, http.StatusOK, w.Code)
		var subs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
		require.Len(t, subs, 2)
		assert.Equal(t, "2025-01-01", subs[0]["subscription_start_date"])
		assert.EqualValues(t, 1, subs[0]["subscription_id"])
	})

	t.Run("list_paged", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions?limit=1&offset=1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = env.do(http.MethodGet, "/subscriptions?limit=-1", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("current_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions/current", "")
		require.Equal(t, http.StatusOK, w.Code)
		var subs []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
		require.Len(t, subs, 1)
		assert.EqualValues(t, 42, subs[0]["car_id"])
	})

	t.Run("total_price_200", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions/current/total-price", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total_price":399.5}`, w.Body.String())
	})

	t.Run("by_id", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"subscription_id": 1,
			"car_id": 42,
			"subscription_start_date": "2025-01-01",
			"subscription_end_date": "2025-03-31",
			"subscription_duration_months": 3,
			"km_driven_during_subscription": 120,
			"contracted_km": 3000,
			"monthly_subscription_price": 399.5,
			"delivery_location": "Copenhagen",
			"has_delivery_insurance": false
		}`, w.Body.String())

		w = env.do(http.MethodGet, "/subscriptions/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Subscription not found"}`, w.Body.String())

		w = env.do(http.MethodGet, "/subscriptions/abc", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("car_info", func(t *testing.T) {
		w := env.do(http.MethodGet, "/subscriptions/1/car", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"car_id":42,"brand":"Volvo"}`, w.Body.String())

		w = env.do(http.MethodGet, "/subscriptions/999/car", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("car_info_without_car_404", func(t *testing.T) {
		w := env.do(http.MethodPost, "/subscriptions", `{"monthly_subscription_price":10}`)
		require.Equal(t, http.StatusCreated, w.Code)
		id := decode[writeResponse](t, w).Subscription.Result.SubscriptionID

		w = env.do(http.MethodGet, "/subscriptions/"+strconv.FormatInt(id, 10)+"/car", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"No car id found"}`, w.Body.String())
	})
}

func TestTotalPriceWithoutActive(t *testing.T) {
	env := newTestEnv(t, "")
	w := env.do(http.MethodGet, "/subscriptions/current/total-price", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_price":0}`, w.Body.String())
}

func TestPatchSubscription(t *testing.T) {
	env := newTestEnv(t, "")
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/subscriptions", car42).Code)
	before, err := env.repo.GetSubByID(context.Background(), 1)
	require.NoError(t, err)
	pushes := env.cars.patches.Load()

	t.Run("price_only_changes_price", func(t *testing.T) {
		w := env.do(http.MethodPatch, "/subscriptions/1", `{"monthly_subscription_price":500}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[writeResponse](t, w)
		assert.Equal(t, "Subscription updated successfully.", resp.Subscription.Result.Message)
		assert.Nil(t, resp.CarUpdate)
		assert.Equal(t, pushes, env.cars.patches.Load())

		after, err := env.repo.GetSubByID(context.Background(), 1)
		require.NoError(t, err)
		want := *before
		want.MonthlyPrice = ptr(500.0)
		assert.Equal(t, want, *after)
	})

	t.Run("date_change_pushes_merged_record", func(t *testing.T) {
		w := env.do(http.MethodPatch, "/subscriptions/1", `{"subscription_end_date":"2025-01-15"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[writeResponse](t, w)
		require.NotNil(t, resp.CarUpdate)
		assert.Equal(t, http.StatusOK, resp.CarUpdate.Status)
		assert.Equal(t, pushes+1, env.cars.patches.Load())
		env.cars.mu.Lock()
		assert.Equal(t, "42", env.cars.lastCarID)
		assert.True(t, env.cars.lastPatch.IsAvailable)
		env.cars.mu.Unlock()
	})

	t.Run("merged_period_invalid_422", func(t *testing.T) {
		w := env.do(http.MethodPatch, "/subscriptions/1", `{"subscription_start_date":"2025-06-01"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown_id_404", func(t *testing.T) {
		w := env.do(http.MethodPatch, "/subscriptions/77", `{"monthly_subscription_price":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteSubscription(t *testing.T) {
	env := newTestEnv(t, "")
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/subscriptions", car42).Code)

	w := env.do(http.MethodDelete, "/subscriptions/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Subscription deleted successfully.","subscription_id":1}`, w.Body.String())

	w = env.do(http.MethodDelete, "/subscriptions/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPost, "/subscriptions", car42)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(2), decode[writeResponse](t, w).Subscription.Result.SubscriptionID)
}

func token(t *testing.T, secret string, claims mw.RoleClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestRoleGate(t *testing.T) {
	env := newTestEnv(t, testSecret)
	bearer := func(claims mw.RoleClaims) []string {
		return []string{"Authorization", "Bearer " + token(t, testSecret, claims)}
	}

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		headers []string
		want    int
	}{
		{"no_token_401", http.MethodGet, "/subscriptions", "", nil, http.StatusUnauthorized},
		{"garbage_token_401", http.MethodGet, "/subscriptions", "", []string{"Authorization", "Bearer nope"}, http.StatusUnauthorized},
		{"foreign_signature_401", http.MethodGet, "/subscriptions", "",
			[]string{"Authorization", "Bearer " + token(t, "other", mw.RoleClaims{Role: roleAdmin})}, http.StatusUnauthorized},
		{"finance_lists_404", http.MethodGet, "/subscriptions", "", bearer(mw.RoleClaims{Role: roleFinance}), http.StatusNotFound},
		{"finance_creates_403", http.MethodPost, "/subscriptions", car42, bearer(mw.RoleClaims{Role: roleFinance}), http.StatusForbidden},
		{"finance_total_price_200", http.MethodGet, "/subscriptions/current/total-price", "", bearer(mw.RoleClaims{Role: roleFinance}), http.StatusOK},
		{"sales_current_403", http.MethodGet, "/subscriptions/current", "", bearer(mw.RoleClaims{Role: roleSales}), http.StatusForbidden},
		{"roles_claim_201", http.MethodPost, "/subscriptions", car42, bearer(mw.RoleClaims{Roles: []string{"viewer", roleSales}}), http.StatusCreated},
		{"admin_cookie_200", http.MethodGet, "/subscriptions/1", "",
			[]string{"Cookie", "Authorization=" + token(t, testSecret, mw.RoleClaims{Role: roleAdmin})}, http.StatusOK},
		{"public_health_200", http.MethodGet, "/health", "", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body, tt.headers...)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRoleGate_EmptySecretOutsideLocal(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := newMemRepo()
	sub := usecase.NewSubscription(repo)
	sub.Now = func() time.Time { return today }
	notifier := usecase.NewCarAvailability(carapi.NewClient(carapi.Config{BaseURL: "http://127.0.0.1:1"}, log), log)

	for _, envName := range []string{"", envDev, envProd} {
		t.Run("env_"+envName, func(t *testing.T) {
			r := SetupGin(cfg.Config{Env: envName}, UseCases{Sub: sub, Cars: notifier}, log)
			env := &testEnv{router: r, repo: repo}

			w := env.do(http.MethodPost, "/subscriptions", car42)
			assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
			w = env.do(http.MethodDelete, "/subscriptions/1", "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
			w = env.do(http.MethodGet, "/health", "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
	assert.Empty(t, repo.subs)
}

func TestAcceptsJSON(t *testing.T) {
	assert.True(t, acceptsJSON(""))
	assert.True(t, acceptsJSON("application/json; charset=utf-8"))
	assert.True(t, acceptsJSON("text/html, */*;q=0.8"))
	assert.False(t, acceptsJSON("application/xml"))
	assert.False(t, acceptsJSON(strings.Repeat("text/plain,", 3)))
}

func ptr[T any](v T) *T { return &v }
