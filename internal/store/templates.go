package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const templatesCollection = "custom_templates"

// TemplateRepository persists CustomTemplate records.
type TemplateRepository struct {
	col *mongo.Collection
}

func NewTemplateRepository(db *mongo.Database) *TemplateRepository {
	return &TemplateRepository{col: db.Collection(templatesCollection)}
}

func (r *TemplateRepository) Insert(ctx context.Context, tpl *CustomTemplate) error {
	if _, err := r.col.InsertOne(ctx, tpl); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (r *TemplateRepository) Get(ctx context.Context, id string) (CustomTemplate, error) {
	var tpl CustomTemplate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return CustomTemplate{}, ErrNotFound
	}
	return tpl, err
}

// List returns all stored templates, most recently updated first.
func (r *TemplateRepository) List(ctx context.Context) ([]CustomTemplate, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tpls := []CustomTemplate{}
	if err := cursor.All(ctx, &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}

// Update replaces the full record.
func (r *TemplateRepository) Update(ctx context.Context, tpl *CustomTemplate) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": tpl.ID}, tpl)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
