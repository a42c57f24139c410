package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lokeshbhai007/faad-do-dsa/internal/middleware"
	"github.com/lokeshbhai007/faad-do-dsa/internal/models"
	"github.com/lokeshbhai007/faad-do-dsa/internal/repositories"
	"github.com/lokeshbhai007/faad-do-dsa/internal/utils"
)

type ReviewHandler struct {
	repo   repositories.ReviewRepository
	logger *zap.Logger
}

func NewReviewHandler(repo repositories.ReviewRepository, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{repo: repo, logger: logger}
}

func (handler *ReviewHandler) GetReviewsHandler(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.repo.ListAll(request.Context())
	if err != nil {
		handler.logger.Error("Failed to fetch review questions", zap.Error(err))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error fetching review questions",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.ReviewListResponse{
		Success: true,
		Data:    reviews,
	})
}

func (handler *ReviewHandler) CreateReviewHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.ReviewCreateRequest](request)

	review := &models.ReviewQuestion{
		QuestionNo:      req.QuestionNo,
		QuestionName:    req.QuestionName,
		SolvingPlatform: req.SolvingPlatform,
		PlatformQsnNo:   req.PlatformQsnNo,
		Note:            req.Note,
	}

	created, err := handler.repo.Create(request.Context(), review)
	if err != nil {
		handler.logger.Error("Failed to create review question", zap.Error(err))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error creating review question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusCreated, models.ReviewResponse{
		Success: true,
		Data:    *created,
	})
}

func (handler *ReviewHandler) UpdateReviewHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.ReviewUpdateRequest](request)

	updated, err := handler.repo.Update(request.Context(), req.ID, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Message: "Review question not found",
			})
			return
		}
		handler.logger.Error("Failed to update review question", zap.Error(err), zap.String("id", req.ID))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error updating review question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.ReviewResponse{
		Success: true,
		Data:    *updated,
	})
}

func (handler *ReviewHandler) DeleteReviewHandler(writer http.ResponseWriter, request *http.Request) {
	id := request.URL.Query().Get("id")
	if id == "" {
		utils.JSON(writer, http.StatusBadRequest, models.ErrorResponse{
			Message: "Question ID is required",
		})
		return
	}

	if err := handler.repo.Delete(request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.JSON(writer, http.StatusNotFound, models.ErrorResponse{
				Message: "Review question not found",
			})
			return
		}
		handler.logger.Error("Failed to delete review question", zap.Error(err), zap.String("id", id))
		utils.JSON(writer, http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error deleting review question",
			Details: err.Error(),
		})
		return
	}

	utils.JSON(writer, http.StatusOK, models.SuccessResponse{Success: true})
}
