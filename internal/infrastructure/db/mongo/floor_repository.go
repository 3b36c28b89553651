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

const floorsCollection = "floors"

type FloorRepository struct {
	coll *mongo.Collection
}

func NewFloorRepository(db *mongo.Database) *FloorRepository {
	return &FloorRepository{coll: db.Collection(floorsCollection)}
}

func (r *FloorRepository) Create(ctx context.Context, floor *domain.Floor) (*domain.Floor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	floor.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, floor); err != nil {
		return nil, fmt.Errorf("insert floor: %w", err)
	}
	return floor, nil
}

func (r *FloorRepository) FindByID(ctx context.Context, id string) (*domain.Floor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var floor domain.Floor
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&floor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFloorNotFound
		}
		return nil, fmt.Errorf("find floor: %w", err)
	}
	return &floor, nil
}

func (r *FloorRepository) FindAll(ctx context.Context) ([]domain.Floor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	defer cur.Close(ctx)

	var floors []domain.Floor
	if err := cur.All(ctx, &floors); err != nil {
		return nil, fmt.Errorf("decode floors: %w", err)
	}
	return floors, nil
}

func (r *FloorRepository) Update(ctx context.Context, floor *domain.Floor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": floor.ID}, floor)
	if err != nil {
		return fmt.Errorf("update floor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFloorNotFound
	}
	return nil
}

func (r *FloorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete floor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFloorNotFound
	}
	return nil
}
