package mongo

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/repositories"
)

const (
	questionsCollection = "questions"
	countersCollection  = "counters"
	questionCounterID   = "questions"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// QuestionRepo wraps the questions collection plus the counter document used
// for sequence assignment.
type QuestionRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

// NewQuestionRepo ensures the unique index on questionNumber before handing
// the repo out.
func NewQuestionRepo(ctx context.Context, db *mongo.Database) (*QuestionRepo, error) {
	col := db.Collection(questionsCollection)

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "questionNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &QuestionRepo{
		col:      col,
		counters: db.Collection(countersCollection),
	}, nil
}

// NextSequence atomically increments the question counter and returns the
// new value. The upsert makes the first call yield 1 on an empty database.
// This replaces a read-max-then-insert scheme that raced under concurrent
// creates; the unique index on questionNumber stays as a backstop.
func (r *QuestionRepo) NextSequence(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": questionCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *QuestionRepo) Insert(ctx context.Context, q *models.Question) (*models.Question, error) {
	res, err := r.col.InsertOne(ctx, q)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		q.ID = oid
	}
	return q, nil
}

func (r *QuestionRepo) List(ctx context.Context, filter repositories.QuestionFilter, page, limit int) ([]models.Question, int, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["originalQuestion"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}
	if filter.Difficulty != "" {
		query["difficulty"] = strings.ToLower(filter.Difficulty)
	}
	if filter.Topic != "" {
		query["topics"] = bson.M{"$in": bson.A{primitive.Regex{Pattern: regexp.QuoteMeta(filter.Topic), Options: "i"}}}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "questionNumber", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	questions := []models.Question{}
	if err := cur.All(ctx, &questions); err != nil {
		return nil, 0, err
	}
	return questions, int(total), nil
}

func (r *QuestionRepo) GetByIDOrNumber(ctx context.Context, token string) (*models.Question, error) {
	query, err := identityQuery(token)
	if err != nil {
		return nil, err
	}

	var q models.Question
	if err := r.col.FindOne(ctx, query).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// Update applies a partial $set built from the non-nil request fields. The
// request type carries no identity fields, so sequence number, original text
// and creation time cannot be touched.
func (r *QuestionRepo) Update(ctx context.Context, token string, update *models.QuestionUpdateRequest) (*models.Question, error) {
	query, err := identityQuery(token)
	if err != nil {
		return nil, err
	}

	patch := bson.M{}
	if update.Difficulty != nil {
		patch["difficulty"] = *update.Difficulty
	}
	if update.Topics != nil {
		patch["topics"] = update.Topics
	}
	if update.Companies != nil {
		patch["companies"] = update.Companies
	}
	if update.Description != nil {
		patch["description"] = *update.Description
	}
	if update.SimplifiedExplanation != nil {
		patch["simplifiedExplanation"] = *update.SimplifiedExplanation
	}
	if update.Examples != nil {
		patch["examples"] = update.Examples
	}
	if update.Approaches != nil {
		patch["approaches"] = update.Approaches
	}
	if update.Solutions != nil {
		patch["solutions"] = update.Solutions
	}
	if update.Hint != nil {
		patch["hint"] = *update.Hint
	}
	if update.SimilarQuestions != nil {
		patch["similarQuestions"] = update.SimilarQuestions
	}

	if len(patch) == 0 {
		return r.GetByIDOrNumber(ctx, token)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Question
	if err := r.col.FindOneAndUpdate(ctx, query, bson.M{"$set": patch}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *QuestionRepo) Delete(ctx context.Context, token string) error {
	query, err := identityQuery(token)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, query)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// identityQuery resolves a path token: an ObjectID-shaped token looks up the
// storage identifier, anything else falls back to the sequence number.
func identityQuery(token string) (bson.M, error) {
	if objectIDPattern.MatchString(token) {
		oid, err := primitive.ObjectIDFromHex(token)
		if err != nil {
			return nil, repositories.ErrNotFound
		}
		return bson.M{"_id": oid}, nil
	}

	number, err := strconv.Atoi(token)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	return bson.M{"questionNumber": number}, nil
}
