package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/usecase"
)

type SubRepository struct {
	pool *pgxpool.Pool
}

var _ usecase.SubscriptionRepository = (*SubRepository)(nil)

const selectColumns = `subscription_id, car_id, subscription_start_date, subscription_end_date,
	subscription_duration_months, km_driven_during_subscription, contracted_km,
	monthly_subscription_price::float8, delivery_location, has_delivery_insurance`

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{
		pool: pool,
	}
}

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (car_id, subscription_start_date, subscription_end_date,
			subscription_duration_months, km_driven_during_subscription, contracted_km,
			monthly_subscription_price, delivery_location, has_delivery_insurance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+selectColumns,
		sub.CarID,
		sub.StartDate,
		sub.EndDate,
		sub.DurationMonths,
		sub.KmDriven,
		sub.ContractedKm,
		sub.MonthlyPrice,
		sub.DeliveryLocation,
		sub.HasDeliveryInsurance,
	)
	out, err := scanSub(row)
	if err != nil {
		return nil, fmt.Errorf("save sub: %w", err)
	}
	return out, nil
}

// UpdateSub writes only the columns set in the patch. Column names come from a fixed
// allow-list and every value is bound as a parameter.
func (r *SubRepository) UpdateSub(ctx context.Context, id int64, p entity.SubscriptionPatch) error {
	var (
		setParts []string
		args     []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.CarID != nil {
		set("car_id", *p.CarID)
	}
	if p.StartDate != nil {
		set("subscription_start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		set("subscription_end_date", *p.EndDate)
	}
	if p.DurationMonths != nil {
		set("subscription_duration_months", *p.DurationMonths)
	}
	if p.KmDriven != nil {
		set("km_driven_during_subscription", *p.KmDriven)
	}
	if p.ContractedKm != nil {
		set("contracted_km", *p.ContractedKm)
	}
	if p.MonthlyPrice != nil {
		set("monthly_subscription_price", *p.MonthlyPrice)
	}
	if p.DeliveryLocation != nil {
		set("delivery_location", *p.DeliveryLocation)
	}
	if p.HasDeliveryInsurance != nil {
		set("has_delivery_insurance", *p.HasDeliveryInsurance)
	}

	if len(setParts) == 0 {
		_, err := r.GetSubByID(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE subscriptions SET %s WHERE subscription_id = $%d`,
		strings.Join(setParts, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sub id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE subscription_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM subscriptions WHERE subscription_id = $1`, id)
	sub, err := scanSub(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%d: %w", id, err)
	}
	return sub, nil
}

func (r *SubRepository) ListSubsByFilter(ctx context.Context, f usecase.SubFilter) ([]*entity.Subscription, error) {
	where, args := filterClause(f)
	query := `SELECT ` + selectColumns + ` FROM subscriptions` + where + ` ORDER BY subscription_id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subs by filter: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Subscription, 0)
	for rows.Next() {
		sub, err := scanSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subs by filter: %w", err)
	}
	return out, nil
}

func (r *SubRepository) CostSubsByFilter(ctx context.Context, f usecase.SubFilter) (float64, error) {
	where, args := filterClause(f)
	var total float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(monthly_subscription_price), 0)::float8 FROM subscriptions`+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("cost subs by filter: %w", err)
	}
	return total, nil
}

func filterClause(f usecase.SubFilter) (string, []any) {
	if f.ActiveOn == nil {
		return "", nil
	}
	return ` WHERE subscription_start_date <= $1 AND subscription_end_date >= $1`, []any{*f.ActiveOn}
}

func scanSub(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := row.Scan(
		&s.ID,
		&s.CarID,
		&s.StartDate,
		&s.EndDate,
		&s.DurationMonths,
		&s.KmDriven,
		&s.ContractedKm,
		&s.MonthlyPrice,
		&s.DeliveryLocation,
		&s.HasDeliveryInsurance,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
