package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/middleware"
	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/repositories"
	"github.com/lokeshbhai007/faad-do-dsa/internal/utils"
)

type QuestionHandler struct {
	repo   repositories.QuestionRepository
	logger *zap.Logger
}

func NewQuestionHandler(repo repositories.QuestionRepository, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{repo: repo, logger: logger}
}

func (handler *QuestionHandler) GetQuestionsHandler(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	// default values
	page := 1
	limit := 10

	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		} else {
			utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
				Message: "page must be a positive integer",
			})
			return
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		} else {
			utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
				Message: "limit must be a positive integer between 1 and 100",
			})
			return
		}
	}

	difficulty := strings.ToLower(query.Get("difficulty"))
	if difficulty != "" &&
		difficulty != string(models.Easy) &&
		difficulty != string(models.Medium) &&
		difficulty != string(models.Hard) {
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Message: "difficulty must be one of: easy, medium, hard",
		})
		return
	}

	filter := repositories.QuestionFilter{
		Search:     query.Get("search"),
		Difficulty: difficulty,
		Topic:      query.Get("topic"),
	}

	questions, total, err := handler.repo.List(request.Context(), filter, page, limit)
	if err != nil {
		handler.logger.Error("Failed to fetch questions", zap.Error(err))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to fetch questions",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionsResponse{
		Success:    true,
		Questions:  questions,
		Pagination: models.NewPagination(page, limit, total),
	})
}

func (handler *QuestionHandler) GetQuestionHandler(writer http.ResponseWriter, request *http.Request) {
	token := chi.URLParam(request, "id")

	question, err := handler.repo.GetByIDOrNumber(request.Context(), token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Message: "Question not found",
			})
			return
		}
		handler.logger.Error("Failed to fetch question", zap.Error(err), zap.String("id", token))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to fetch question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: *question,
	})
}

func (handler *QuestionHandler) UpdateQuestionHandler(writer http.ResponseWriter, request *http.Request) {
	token := chi.URLParam(request, "id")
	req := middleware.GetValidatedRequest[*models.QuestionUpdateRequest](request)

	updated, err := handler.repo.Update(request.Context(), token, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Message: "Question not found",
			})
			return
		}
		handler.logger.Error("Failed to update question", zap.Error(err), zap.String("id", token))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to update question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionResponse{
		Success:  true,
		Question: *updated,
	})
}

func (handler *QuestionHandler) DeleteQuestionHandler(writer http.ResponseWriter, request *http.Request) {
	token := chi.URLParam(request, "id")

	if err := handler.repo.Delete(request.Context(), token); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Message: "Question not found",
			})
			return
		}
		handler.logger.Error("Failed to delete question", zap.Error(err), zap.String("id", token))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Failed to delete question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SuccessResponse{Success: true})
}
