package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/castellano-app/castellano-backend/internal/domain"
	"github.com/castellano-app/castellano-backend/internal/generator"
	"github.com/castellano-app/castellano-backend/internal/http/response"
)

const (
	defaultQuestionLimit = 10
	maxQuestionLimit     = 100
)

// QuestionsHandler serves ad-hoc question batches that are not persisted as a
// round. Useful for previewing a filter combination before starting one.
type QuestionsHandler struct {
	gen              *generator.Generator
	defaultVerbClass string
}

func NewQuestionsHandler(gen *generator.Generator, defaultVerbClass string) *QuestionsHandler {
	return &QuestionsHandler{gen: gen, defaultVerbClass: defaultVerbClass}
}

// GET /api/questions
func (h *QuestionsHandler) ListQuestions(c *gin.Context) {
	pronouns, err := parsePronouns(c.QueryArray("pronoun"), []types.Pronoun{types.PronounYo, types.PronounTu})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	tenses, err := parseTenses(c.QueryArray("tense"), []types.Tense{types.TensePresent})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	moods, err := parseMoods(c.QueryArray("mood"), []types.Mood{types.MoodIndicative})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	limit := defaultQuestionLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxQuestionLimit {
			response.RespondError(c, http.StatusBadRequest, "invalid_request",
				fmt.Errorf("limit must be an integer between 1 and %d", maxQuestionLimit))
			return
		}
	}

	verbClass := c.DefaultQuery("verb_class", h.defaultVerbClass)

	questions, err := h.gen.Generate(c.Request.Context(), nil, pronouns, tenses, moods, verbClass, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"questions": questions, "count": len(questions)})
}

func parsePronouns(raw []string, fallback []types.Pronoun) ([]types.Pronoun, error) {
	if len(raw) == 0 {
		return fallback, nil
	}
	out := make([]types.Pronoun, 0, len(raw))
	for _, s := range raw {
		p, err := types.ParsePronoun(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseTenses(raw []string, fallback []types.Tense) ([]types.Tense, error) {
	if len(raw) == 0 {
		return fallback, nil
	}
	out := make([]types.Tense, 0, len(raw))
	for _, s := range raw {
		t, err := types.ParseTense(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseMoods(raw []string, fallback []types.Mood) ([]types.Mood, error) {
	if len(raw) == 0 {
		return fallback, nil
	}
	out := make([]types.Mood, 0, len(raw))
	for _, s := range raw {
		m, err := types.ParseMood(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
