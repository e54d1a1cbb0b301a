package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const logsCollection = "email_logs"

// LogRepository persists EmailLog records.
type LogRepository struct {
	col *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{col: db.Collection(logsCollection)}
}

// Insert stores a new log record. The record is expected to be in queued
// status; the send path inserts before calling the delivery provider.
func (r *LogRepository) Insert(ctx context.Context, log *EmailLog) error {
	if _, err := r.col.InsertOne(ctx, log); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// MarkSent moves a log record to its terminal sent status.
func (r *LogRepository) MarkSent(ctx context.Context, id, providerMessageID string) error {
	return r.setStatus(ctx, id, bson.M{
		"status":              StatusSent,
		"provider_message_id": providerMessageID,
	})
}

// MarkFailed moves a log record to its terminal failed status with the
// provider's error text.
func (r *LogRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	return r.setStatus(ctx, id, bson.M{
		"status": StatusFailed,
		"error":  errMsg,
	})
}

func (r *LogRepository) setStatus(ctx context.Context, id string, fields bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns a single log record by id.
func (r *LogRepository) Get(ctx context.Context, id string) (EmailLog, error) {
	var log EmailLog
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return EmailLog{}, ErrNotFound
	}
	return log, err
}

// List returns the most recent log records, newest first.
func (r *LogRepository) List(ctx context.Context, limit int64) ([]EmailLog, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []EmailLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
