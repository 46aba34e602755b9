package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/http/response"
	"github.com/castellano-app/castellano-backend/internal/services"
)

const (
	defaultNumQuestions = 12
	maxNumQuestions     = 50
)

type RoundsHandler struct {
	svc              services.RoundService
	defaultVerbClass string
}

func NewRoundsHandler(svc services.RoundService, defaultVerbClass string) *RoundsHandler {
	return &RoundsHandler{svc: svc, defaultVerbClass: defaultVerbClass}
}

type createRoundRequest struct {
	Filters      types.Filters `json:"filters"`
	NumQuestions int           `json:"num_questions"`
	UserID       *uuid.UUID    `json:"user_id,omitempty"`
	VerbClass    string        `json:"verb_class,omitempty"`
}

func (r *createRoundRequest) normalize(defaultVerbClass string) {
	if r.NumQuestions == 0 {
		r.NumQuestions = defaultNumQuestions
	}
	if r.VerbClass == "" {
		r.VerbClass = defaultVerbClass
	}
}

type submitGuessRequest struct {
	UserAnswer string `json:"user_answer" binding:"required"`
	IsCorrect  *bool  `json:"is_correct" binding:"required"`
}

// POST /api/rounds
func (h *RoundsHandler) CreateRound(c *gin.Context) {
	var req createRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.normalize(h.defaultVerbClass)
	if req.NumQuestions < 1 || req.NumQuestions > maxNumQuestions {
		response.RespondError(c, http.StatusBadRequest, "invalid_request",
			fmt.Errorf("num_questions must be between 1 and %d", maxNumQuestions))
		return
	}

	result, err := h.svc.CreateRound(c.Request.Context(), req.Filters, req.NumQuestions, req.UserID, req.VerbClass)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// PUT /api/rounds/:id/complete
func (h *RoundsHandler) CompleteRound(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.svc.CompleteRound(c.Request.Context(), roundID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/rounds/active
func (h *RoundsHandler) GetActiveRound(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		userID = &id
	}

	result, err := h.svc.GetActiveRound(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if result == nil {
		response.RespondError(c, http.StatusNotFound, "not_found", services.ErrRoundNotFound)
		return
	}
	response.RespondOK(c, result)
}

// GET /api/rounds/:id
func (h *RoundsHandler) GetRound(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.svc.GetRound(c.Request.Context(), roundID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// POST /api/rounds/:id/transition
func (h *RoundsHandler) TransitionRound(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	var req createRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	req.normalize(h.defaultVerbClass)
	if req.NumQuestions < 1 || req.NumQuestions > maxNumQuestions {
		response.RespondError(c, http.StatusBadRequest, "invalid_request",
			fmt.Errorf("num_questions must be between 1 and %d", maxNumQuestions))
		return
	}

	result, err := h.svc.TransitionToNewRound(c.Request.Context(), roundID, req.Filters, req.NumQuestions, req.UserID, req.VerbClass)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

// PUT /api/guesses/:id
func (h *RoundsHandler) SubmitGuess(c *gin.Context) {
	guessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	var req submitGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	guess, err := h.svc.UpdateGuess(c.Request.Context(), guessID, req.UserAnswer, *req.IsCorrect)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"guess": guess})
}
