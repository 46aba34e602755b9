package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/castellano-app/castellano-backend/internal/http/response"
	"github.com/castellano-app/castellano-backend/internal/services"
)

type VerbsHandler struct {
	svc services.VerbService
}

func NewVerbsHandler(svc services.VerbService) *VerbsHandler {
	return &VerbsHandler{svc: svc}
}

// GET /api/verbs/:verb/conjugations
func (h *VerbsHandler) Conjugations(c *gin.Context) {
	verb := strings.ToLower(strings.TrimSpace(c.Param("verb")))
	if verb == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request",
			fmt.Errorf("verb is required"))
		return
	}

	table := h.svc.Conjugations(verb)
	if len(table) == 0 {
		response.RespondError(c, http.StatusNotFound, "not_found",
			fmt.Errorf("no conjugations available for %q", verb))
		return
	}
	response.RespondOK(c, gin.H{"verb": verb, "conjugations": table})
}
