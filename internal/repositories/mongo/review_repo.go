package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/repositories"
)

const reviewsCollection = "reviewQuestions"

// ReviewRepo wraps the review bookmarks collection.
type ReviewRepo struct {
	col *mongo.Collection
}

// NewReviewRepo adds the questionNo index used when reviews are looked up
// alongside their question.
func NewReviewRepo(ctx context.Context, db *mongo.Database) (*ReviewRepo, error) {
	col := db.Collection(reviewsCollection)

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "questionNo", Value: 1}},
	})
	if err != nil {
		return nil, err
	}

	return &ReviewRepo{col: col}, nil
}

func (r *ReviewRepo) ListAll(ctx context.Context) ([]models.ReviewQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []models.ReviewQuestion{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.ReviewQuestion) (*models.ReviewQuestion, error) {
	now := time.Now().UTC()
	review.Reviewed = false
	review.CreatedAt = now
	review.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return review, nil
}

// Update applies a partial $set; the identifier and creation time are not
// representable in the request type, so they cannot be overwritten.
func (r *ReviewRepo) Update(ctx context.Context, id string, update *models.ReviewUpdateRequest) (*models.ReviewQuestion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	patch := bson.M{"updatedAt": time.Now().UTC()}
	if update.QuestionNo != nil {
		patch["questionNo"] = *update.QuestionNo
	}
	if update.QuestionName != nil {
		patch["questionName"] = *update.QuestionName
	}
	if update.SolvingPlatform != nil {
		patch["solvingPlatform"] = *update.SolvingPlatform
	}
	if update.PlatformQsnNo != nil {
		patch["platformQsnNo"] = *update.PlatformQsnNo
	}
	if update.Note != nil {
		patch["note"] = *update.Note
	}
	if update.Reviewed != nil {
		patch["reviewed"] = *update.Reviewed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ReviewQuestion
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": patch}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
