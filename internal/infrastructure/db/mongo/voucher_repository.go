package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deskhive/booking-system/internal/core/domain"
)

const vouchersCollection = "vouchers"

type VoucherRepository struct {
	coll *mongo.Collection
}

func NewVoucherRepository(db *mongo.Database) *VoucherRepository {
	return &VoucherRepository{coll: db.Collection(vouchersCollection)}
}

func (r *VoucherRepository) Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	voucher.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, voucher); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrVoucherExists
		}
		return nil, fmt.Errorf("insert voucher: %w", err)
	}
	return voucher, nil
}

func (r *VoucherRepository) FindByID(ctx context.Context, id string) (*domain.Voucher, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *VoucherRepository) findOne(ctx context.Context, filter bson.M) (*domain.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var voucher domain.Voucher
	if err := r.coll.FindOne(ctx, filter).Decode(&voucher); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("find voucher: %w", err)
	}
	return &voucher, nil
}

func (r *VoucherRepository) FindAll(ctx context.Context) ([]domain.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer cur.Close(ctx)

	var vouchers []domain.Voucher
	if err := cur.All(ctx, &vouchers); err != nil {
		return nil, fmt.Errorf("decode vouchers: %w", err)
	}
	return vouchers, nil
}

func (r *VoucherRepository) Update(ctx context.Context, voucher *domain.Voucher) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": voucher.ID}, voucher)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrVoucherExists
		}
		return fmt.Errorf("update voucher: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

func (r *VoucherRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete voucher: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVoucherNotFound
	}
	return nil
}

func (r *VoucherRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
