package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const unsubscribesCollection = "unsubscribes"

// UnsubscribeRepository persists opt-out records.
type UnsubscribeRepository struct {
	col *mongo.Collection
}

func NewUnsubscribeRepository(db *mongo.Database) *UnsubscribeRepository {
	return &UnsubscribeRepository{col: db.Collection(unsubscribesCollection)}
}

// Upsert records an unsubscribe. Repeated requests for the same address
// update the source but keep the original opt-out time.
func (r *UnsubscribeRepository) Upsert(ctx context.Context, email, source string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": email},
		bson.M{
			"$set":         bson.M{"source": source},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

// IsUnsubscribed reports whether the address has opted out.
func (r *UnsubscribeRepository) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"_id": email}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}
