package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/llm"
	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/prompts"
)

// ErrEmptyQuestion rejects blank input before any external call is made.
var ErrEmptyQuestion = errors.New("question is required")

// StorageError labels persistence failures so handlers can report them
// distinctly from upstream AI failures.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "database operation failed: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// QuestionStore is the slice of the questions repository the analyzer needs.
type QuestionStore interface {
	NextSequence(ctx context.Context) (int, error)
	Insert(ctx context.Context, question *models.Question) (*models.Question, error)
}

// Analyzer runs the full analysis pipeline: prompt the model once, normalize
// whichever reply dialect comes back, assign the next sequence number and
// persist the record.
type Analyzer struct {
	provider    llm.Provider
	prompts     prompts.PromptProvider
	store       QuestionStore
	promptStyle string
	logger      *zap.Logger
}

func NewAnalyzer(provider llm.Provider, promptManager prompts.PromptProvider, store QuestionStore, promptStyle string, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		provider:    provider,
		prompts:     promptManager,
		store:       store,
		promptStyle: promptStyle,
		logger:      logger,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, question string) (*models.Question, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	requestID := uuid.New().String()

	prompt, err := a.prompts.BuildPrompt("analyze", a.promptStyle, question)
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis prompt: %w", err)
	}

	// one call, no retry; the caller decides whether to resubmit
	reply, err := a.provider.Complete(ctx, prompt, requestID)
	if err != nil {
		a.logger.Error("AI provider error",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("provider", a.provider.GetProviderName()))
		return nil, err
	}

	parsed, err := ParseAnalysis(reply, question)
	if err != nil {
		a.logger.Error("Failed to parse analysis reply",
			zap.Error(err),
			zap.String("request_id", requestID))
		return nil, err
	}

	sequence, err := a.store.NextSequence(ctx)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	record := &models.Question{
		QuestionNumber:        sequence,
		OriginalQuestion:      question,
		Difficulty:            parsed.Difficulty,
		Topics:                parsed.Topics,
		Companies:             parsed.Companies,
		Description:           parsed.Description,
		SimplifiedExplanation: parsed.SimplifiedExplanation,
		Examples:              parsed.Examples,
		Approaches:            parsed.Approaches,
		Solutions:             parsed.Solutions,
		Hint:                  parsed.Hint,
		SimilarQuestions:      parsed.SimilarQuestions,
		CreatedAt:             time.Now().UTC(),
	}

	saved, err := a.store.Insert(ctx, record)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	a.logger.Info("Question analyzed",
		zap.String("request_id", requestID),
		zap.Int("question_number", saved.QuestionNumber),
		zap.String("difficulty", string(saved.Difficulty)))

	return saved, nil
}
