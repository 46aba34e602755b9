package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castellano-app/castellano-backend/internal/catalog"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/generator"
	"github.com/castellano-app/castellano-backend/internal/http/response"
	"github.com/castellano-app/castellano-backend/internal/services"
)

// respondServiceError maps service sentinels onto HTTP statuses so every
// handler reports the same way.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidFilters),
		errors.Is(err, catalog.ErrInvalidClass),
		errors.Is(err, catalog.ErrNoRankedVerbs),
		errors.Is(err, generator.ErrEmptyPool):
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, services.ErrRoundNotFound),
		errors.Is(err, services.ErrGuessNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrRoundCompleted):
		response.RespondError(c, http.StatusConflict, "already_completed", err)
	case errors.Is(err, services.ErrInsufficientQuestions):
		response.RespondError(c, http.StatusUnprocessableEntity, "insufficient_questions", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
