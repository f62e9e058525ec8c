package httpapi

import (
	"net/http"
	"strings"

	"weup-connect/internal/domain"
	"weup-connect/internal/service"

	"go.uber.org/zap"
)

// ActionHandler next-best-action endpoint
type ActionHandler struct {
	decisions *service.DecisionService
	logger    *zap.Logger
}

func NewActionHandler(decisions *service.DecisionService, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{decisions: decisions, logger: logger}
}

// NextBestAction GET /connect/api/v1/next-best-action?emotion=depression
// The emotion enum is validated here; the engine itself stays forgiving.
// An empty list is a successful "nothing to recommend", distinct from the
// error envelope a failed computation produces.
func (h *ActionHandler) NextBestAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	emotion := domain.Emotion(strings.TrimSpace(r.URL.Query().Get("emotion")))
	if !emotion.IsValid() {
		writeJSON(w, http.StatusOK, Fail("unknown emotion: "+string(emotion)))
		return
	}

	recs, err := h.decisions.NextBestAction(ctx, userID, emotion)
	if err != nil {
		h.logger.Error("NextBestAction failed",
			zap.String("emotion", string(emotion)),
			zap.Error(err),
		)
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(recs))
}
