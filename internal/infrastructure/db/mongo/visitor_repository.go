package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deskhive/booking-system/internal/core/domain"
)

const visitorsCollection = "visitors"

type VisitorRepository struct {
	coll *mongo.Collection
}

func NewVisitorRepository(db *mongo.Database) *VisitorRepository {
	return &VisitorRepository{coll: db.Collection(visitorsCollection)}
}

func (r *VisitorRepository) Create(ctx context.Context, visitor *domain.Visitor) (*domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	visitor.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, visitor); err != nil {
		return nil, fmt.Errorf("insert visitor: %w", err)
	}
	return visitor, nil
}

func (r *VisitorRepository) FindByID(ctx context.Context, id string) (*domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var visitor domain.Visitor
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&visitor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitorNotFound
		}
		return nil, fmt.Errorf("find visitor: %w", err)
	}
	return &visitor, nil
}

func (r *VisitorRepository) FindAll(ctx context.Context) ([]domain.Visitor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer cur.Close(ctx)

	var visitors []domain.Visitor
	if err := cur.All(ctx, &visitors); err != nil {
		return nil, fmt.Errorf("decode visitors: %w", err)
	}
	return visitors, nil
}

func (r *VisitorRepository) Update(ctx context.Context, visitor *domain.Visitor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": visitor.ID}, visitor)
	if err != nil {
		return fmt.Errorf("update visitor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVisitorNotFound
	}
	return nil
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVisitorNotFound
	}
	return nil
}
