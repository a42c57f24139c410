package repositories

import (
	"context"
	"errors"

	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
)

// ErrNotFound is returned for lookups that match no document. Handlers map
// it to 404; it is a normal outcome, not a storage failure.
var ErrNotFound = errors.New("not found")

// QuestionFilter narrows question listings. Zero values mean "no filter".
type QuestionFilter struct {
	Search     string // free-text match against the original question body
	Difficulty string
	Topic      string // substring match against topic labels
}

type QuestionRepository interface {
	NextSequence(ctx context.Context) (int, error)
	Insert(ctx context.Context, question *models.Question) (*models.Question, error)
	List(ctx context.Context, filter QuestionFilter, page, limit int) ([]models.Question, int, error)
	// GetByIDOrNumber resolves a 24-hex token as a storage identifier and
	// anything else as a sequence number.
	GetByIDOrNumber(ctx context.Context, token string) (*models.Question, error)
	Update(ctx context.Context, token string, update *models.QuestionUpdateRequest) (*models.Question, error)
	Delete(ctx context.Context, token string) error
}

type ReviewRepository interface {
	ListAll(ctx context.Context) ([]models.ReviewQuestion, error)
	Create(ctx context.Context, review *models.ReviewQuestion) (*models.ReviewQuestion, error)
	Update(ctx context.Context, id string, update *models.ReviewUpdateRequest) (*models.ReviewQuestion, error)
	Delete(ctx context.Context, id string) error
}
