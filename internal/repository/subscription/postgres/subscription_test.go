package postgres

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/usecase"
)

var pgContainer *postgres.PostgresContainer

func cleanup() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	c, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("subs_db"),
		postgres.WithUsername("subs_user"),
		postgres.WithPassword("subs_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run container: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	pgContainer = c

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "conn string: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	migDir, err := filepath.Abs("../../../../migrations")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrations path: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	if err := Migrate(connStr, "file://"+filepath.ToSlash(migDir)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func newRepo(t *testing.T) (*SubRepository, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	_, err = pool.Exec(ctx, `TRUNCATE TABLE subscriptions RESTART IDENTITY`)
	require.NoError(t, err)
	return NewSubRepository(pool), pool
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sample(carID int64, start, end *time.Time, price float64) *entity.Subscription {
	return &entity.Subscription{
		CarID:            ptr(carID),
		StartDate:        start,
		EndDate:          end,
		DurationMonths:   3,
		KmDriven:         ptr(int64(120)),
		ContractedKm:     ptr(int64(3000)),
		MonthlyPrice:     ptr(price),
		DeliveryLocation: ptr("Odense"),
	}
}

func TestSubRepository_SaveSub(t *testing.T) {
	ctx := context.Background()
	sr, _ := newRepo(t)

	t.Run("full record", func(t *testing.T) {
		in := sample(42, day(2025, 1, 1), day(2025, 3, 31), 449.5)
		created, err := sr.SaveSub(ctx, in)
		require.NoError(t, err)
		assert.Positive(t, created.ID)

		got, err := sr.GetSubByID(ctx, created.ID)
		require.NoError(t, err)
		in.ID = created.ID
		assert.Equal(t, *in, *got)
	})

	t.Run("sparse record keeps nulls", func(t *testing.T) {
		created, err := sr.SaveSub(ctx, &entity.Subscription{DurationMonths: 3})
		require.NoError(t, err)
		assert.Nil(t, created.CarID)
		assert.Nil(t, created.StartDate)
		assert.Nil(t, created.MonthlyPrice)
		assert.False(t, created.HasDeliveryInsurance)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := sr.SaveSub(ctx, nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidSubscription)
	})
}

func TestSubRepository_UpdateSub(t *testing.T) {
	ctx := context.Background()
	sr, _ := newRepo(t)

	created, err := sr.SaveSub(ctx, sample(42, day(2025, 1, 1), day(2025, 3, 31), 399))
	require.NoError(t, err)

	t.Run("only patched column changes", func(t *testing.T) {
		require.NoError(t, sr.UpdateSub(ctx, created.ID, entity.SubscriptionPatch{MonthlyPrice: ptr(500.0)}))

		got, err := sr.GetSubByID(ctx, created.ID)
		require.NoError(t, err)

		want := *created
		want.MonthlyPrice = ptr(500.0)
		assert.Equal(t, want, *got)
	})

	t.Run("several columns", func(t *testing.T) {
		require.NoError(t, sr.UpdateSub(ctx, created.ID, entity.SubscriptionPatch{
			EndDate:              day(2025, 6, 30),
			HasDeliveryInsurance: ptr(true),
			DeliveryLocation:     ptr("Aalborg"),
		}))

		got, err := sr.GetSubByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *day(2025, 6, 30), *got.EndDate)
		assert.True(t, got.HasDeliveryInsurance)
		assert.Equal(t, "Aalborg", *got.DeliveryLocation)
		assert.Equal(t, *day(2025, 1, 1), *got.StartDate)
	})

	t.Run("values are bound, not interpolated", func(t *testing.T) {
		evil := "x'; DROP TABLE subscriptions; --"
		require.NoError(t, sr.UpdateSub(ctx, created.ID, entity.SubscriptionPatch{DeliveryLocation: &evil}))

		got, err := sr.GetSubByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, evil, *got.DeliveryLocation)
	})

	t.Run("not found", func(t *testing.T) {
		err := sr.UpdateSub(ctx, created.ID+100, entity.SubscriptionPatch{MonthlyPrice: ptr(1.0)})
		assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)
	})
}

func TestSubRepository_DeleteSub(t *testing.T) {
	ctx := context.Background()
	sr, _ := newRepo(t)

	created, err := sr.SaveSub(ctx, sample(1, day(2025, 1, 1), day(2025, 3, 31), 100))
	require.NoError(t, err)

	require.NoError(t, sr.DeleteSub(ctx, created.ID))
	assert.ErrorIs(t, sr.DeleteSub(ctx, created.ID), usecase.ErrSubscriptionNotFound)

	_, err = sr.GetSubByID(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrSubscriptionNotFound)

	next, err := sr.SaveSub(ctx, sample(2, day(2025, 1, 1), day(2025, 3, 31), 100))
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID, "ids are never reused")
}

func TestSubRepository_ActiveFilters(t *testing.T) {
	ctx := context.Background()
	sr, _ := newRepo(t)

	for _, s := range []*entity.Subscription{
		sample(1, day(2025, 1, 1), day(2025, 3, 31), 300),
		sample(2, day(2025, 2, 1), day(2025, 2, 1), 150.25),
		sample(3, day(2025, 3, 1), day(2025, 5, 31), 999),
		sample(4, day(2024, 1, 1), day(2025, 1, 31), 50),
	} {
		_, err := sr.SaveSub(ctx, s)
		require.NoError(t, err)
	}

	today := *day(2025, 2, 1)

	active, err := sr.ListSubsByFilter(ctx, usecase.SubFilter{ActiveOn: &today})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), *active[0].CarID)
	assert.Equal(t, int64(2), *active[1].CarID)

	total, err := sr.CostSubsByFilter(ctx, usecase.SubFilter{ActiveOn: &today})
	require.NoError(t, err)
	assert.InDelta(t, 450.25, total, 0.001)

	empty := *day(2030, 1, 1)
	total, err = sr.CostSubsByFilter(ctx, usecase.SubFilter{ActiveOn: &empty})
	require.NoError(t, err)
	assert.Zero(t, total)

	all, err := sr.ListSubsByFilter(ctx, usecase.SubFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	page, err := sr.ListSubsByFilter(ctx, usecase.SubFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(2), *page[0].CarID)
}
