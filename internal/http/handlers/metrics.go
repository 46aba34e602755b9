package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/http/response"
	"github.com/castellano-app/castellano-backend/internal/services"
)

type MetricsHandler struct {
	svc services.MetricsService
}

func NewMetricsHandler(svc services.MetricsService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// GET /api/metrics/coverage
func (h *MetricsHandler) Coverage(c *gin.Context) {
	var q practice.CoverageQuery

	for _, raw := range c.QueryArray("mood") {
		mood, err := types.ParseMood(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		q.Moods = append(q.Moods, mood)
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		q.UserID = &id
	}

	if raw := c.Query("start_date"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		q.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		q.EndDate = &t
	}

	if raw := c.Query("min_questions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.RespondError(c, http.StatusBadRequest, "invalid_request",
				fmt.Errorf("min_questions must be a positive integer"))
			return
		}
		q.MinQuestions = n
	}

	result, err := h.svc.Coverage(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// parseDateParam accepts RFC 3339 timestamps and bare dates.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want RFC 3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}
