package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"car_subscriptions/internal/availability"
	"car_subscriptions/internal/entity"
	"car_subscriptions/internal/usecase"
)

const (
	subsCollection     = "subscriptions"
	countersCollection = "counters"
	subsCounter        = "subscription_id"
)

// subDoc - stored form of a subscription; dates are kept as YYYY-MM-DD strings
// so range filters compare lexically
type subDoc struct {
	ID                   int64    `bson:"subscription_id"`
	CarID                *int64   `bson:"car_id"`
	StartDate            *string  `bson:"subscription_start_date"`
	EndDate              *string  `bson:"subscription_end_date"`
	DurationMonths       int64    `bson:"subscription_duration_months"`
	KmDriven             *int64   `bson:"km_driven_during_subscription"`
	ContractedKm         *int64   `bson:"contracted_km"`
	MonthlyPrice         *float64 `bson:"monthly_subscription_price"`
	DeliveryLocation     *string  `bson:"delivery_location"`
	HasDeliveryInsurance bool     `bson:"has_delivery_insurance"`
}

type SubRepository struct {
	subs     *mongo.Collection
	counters *mongo.Collection
}

var _ usecase.SubscriptionRepository = (*SubRepository)(nil)

func NewSubRepository(db *mongo.Database) *SubRepository {
	return &SubRepository{
		subs:     db.Collection(subsCollection),
		counters: db.Collection(countersCollection),
	}
}

// EnsureIndexes creates the unique id index and the date range index.
func (r *SubRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.subs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "subscription_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "subscription_start_date", Value: 1},
				{Key: "subscription_end_date", Value: 1},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	return nil
}

// nextID hands out increasing ids from the counters collection; ids of deleted
// documents are never handed out again.
func (r *SubRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": subsCounter},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return counter.Seq, nil
}

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("save sub: %w", err)
	}

	doc := toDoc(sub)
	doc.ID = id
	if _, err := r.subs.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("save sub: %w", err)
	}
	return fromDoc(doc)
}

func (r *SubRepository) UpdateSub(ctx context.Context, id int64, p entity.SubscriptionPatch) error {
	set := bson.M{}
	if p.CarID != nil {
		set["car_id"] = *p.CarID
	}
	if p.StartDate != nil {
		set["subscription_start_date"] = p.StartDate.Format(availability.DateLayout)
	}
	if p.EndDate != nil {
		set["subscription_end_date"] = p.EndDate.Format(availability.DateLayout)
	}
	if p.DurationMonths != nil {
		set["subscription_duration_months"] = *p.DurationMonths
	}
	if p.KmDriven != nil {
		set["km_driven_during_subscription"] = *p.KmDriven
	}
	if p.ContractedKm != nil {
		set["contracted_km"] = *p.ContractedKm
	}
	if p.MonthlyPrice != nil {
		set["monthly_subscription_price"] = *p.MonthlyPrice
	}
	if p.DeliveryLocation != nil {
		set["delivery_location"] = *p.DeliveryLocation
	}
	if p.HasDeliveryInsurance != nil {
		set["has_delivery_insurance"] = *p.HasDeliveryInsurance
	}

	if len(set) == 0 {
		_, err := r.GetSubByID(ctx, id)
		return err
	}

	res, err := r.subs.UpdateOne(ctx, bson.M{"subscription_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update sub id=%d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id int64) error {
	res, err := r.subs.DeleteOne(ctx, bson.M{"subscription_id": id})
	if err != nil {
		return fmt.Errorf("delete sub: %w", err)
	}
	if res.DeletedCount == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	var doc subDoc
	err := r.subs.FindOne(ctx, bson.M{"subscription_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%d: %w", id, err)
	}
	return fromDoc(doc)
}

func (r *SubRepository) ListSubsByFilter(ctx context.Context, f usecase.SubFilter) ([]*entity.Subscription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscription_id", Value: 1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Offset > 0 {
		opts.SetSkip(int64(f.Offset))
	}

	cur, err := r.subs.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list subs by filter: %w", err)
	}
	var docs []subDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list subs by filter: %w", err)
	}

	out := make([]*entity.Subscription, 0, len(docs))
	for _, d := range docs {
		sub, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

func (r *SubRepository) CostSubsByFilter(ctx context.Context, f usecase.SubFilter) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filterDoc(f)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$monthly_subscription_price"}}},
		}}},
	}
	cur, err := r.subs.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("cost subs by filter: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("cost subs by filter: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func filterDoc(f usecase.SubFilter) bson.M {
	if f.ActiveOn == nil {
		return bson.M{}
	}
	day := f.ActiveOn.Format(availability.DateLayout)
	return bson.M{
		"subscription_start_date": bson.M{"$lte": day},
		"subscription_end_date":   bson.M{"$gte": day},
	}
}

func toDoc(s *entity.Subscription) subDoc {
	return subDoc{
		ID:                   s.ID,
		CarID:                s.CarID,
		StartDate:            formatDay(s.StartDate),
		EndDate:              formatDay(s.EndDate),
		DurationMonths:       s.DurationMonths,
		KmDriven:             s.KmDriven,
		ContractedKm:         s.ContractedKm,
		MonthlyPrice:         s.MonthlyPrice,
		DeliveryLocation:     s.DeliveryLocation,
		HasDeliveryInsurance: s.HasDeliveryInsurance,
	}
}

func fromDoc(d subDoc) (*entity.Subscription, error) {
	start, err := parseDay(d.StartDate)
	if err != nil {
		return nil, fmt.Errorf("decode sub id=%d: %w", d.ID, err)
	}
	end, err := parseDay(d.EndDate)
	if err != nil {
		return nil, fmt.Errorf("decode sub id=%d: %w", d.ID, err)
	}
	return &entity.Subscription{
		ID:                   d.ID,
		CarID:                d.CarID,
		StartDate:            start,
		EndDate:              end,
		DurationMonths:       d.DurationMonths,
		KmDriven:             d.KmDriven,
		ContractedKm:         d.ContractedKm,
		MonthlyPrice:         d.MonthlyPrice,
		DeliveryLocation:     d.DeliveryLocation,
		HasDeliveryInsurance: d.HasDeliveryInsurance,
	}, nil
}

func formatDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(availability.DateLayout)
	return &s
}

func parseDay(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := availability.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
