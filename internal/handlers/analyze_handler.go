package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/analysis"
	"github.com/lokeshbhai007/faad-do-dsa/internal/llm"
	"github.com/lokeshbhai007/faad-do-dsa/internal/metrics"
	"github.com/lokeshbhai007/faad-do-dsa/internal/middleware"
	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/utils"
)

// QuestionAnalyzer is the orchestration entry point the handler depends on.
type QuestionAnalyzer interface {
	Analyze(ctx context.Context, question string) (*models.Question, error)
}

type AnalyzeHandler struct {
	analyzer QuestionAnalyzer
	logger   *zap.Logger
}

func NewAnalyzeHandler(analyzer QuestionAnalyzer, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

func (h *AnalyzeHandler) AnalyzeQuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnalyzeRequest](r)

	question, err := h.analyzer.Analyze(r.Context(), req.Question)
	if err != nil {
		h.writeAnalyzeError(w, err)
		return
	}

	metrics.RecordAnalysis("ok")
	utils.JSON(w, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: *question,
	})
}

// writeAnalyzeError keeps the three failure classes distinct: bad input,
// upstream AI failure and storage failure.
func (h *AnalyzeHandler) writeAnalyzeError(w http.ResponseWriter, err error) {
	var providerErr *llm.ProviderError
	var parseErr *analysis.ParseError
	var storageErr *analysis.StorageError

	switch {
	case errors.Is(err, analysis.ErrEmptyQuestion):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Message: "Question is required",
		})
	case errors.As(err, &storageErr):
		metrics.RecordAnalysis("storage_error")
		h.logger.Error("Database error during analysis", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Database operation failed",
			Details: storageErr.Err.Error(),
		})
	case errors.As(err, &parseErr):
		metrics.RecordAnalysis("parse_error")
		h.logger.Error("Unparseable analysis reply", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to analyze question",
			Details: parseErr.Error(),
		})
	case errors.As(err, &providerErr):
		metrics.RecordAnalysis("upstream_error")
		h.logger.Error("AI provider error", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to analyze question",
			Details: providerErr.Message,
		})
	default:
		metrics.RecordAnalysis("upstream_error")
		h.logger.Error("Analysis failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to analyze question",
			Details: err.Error(),
		})
	}
}
