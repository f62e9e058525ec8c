package httpapi

import (
	"net/http"
	"time"

	"weup-connect/internal/service"

	"go.uber.org/zap"
)

// CaseloadHandler mentor caseload endpoint
type CaseloadHandler struct {
	caseload *service.CaseloadService
	logger   *zap.Logger
}

func NewCaseloadHandler(caseload *service.CaseloadService, logger *zap.Logger) *CaseloadHandler {
	return &CaseloadHandler{caseload: caseload, logger: logger}
}

// Roster GET /connect/api/v1/caseload
// Mentees with strength scores, weakest engagement first.
func (h *CaseloadHandler) Roster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	entries, err := h.caseload.Roster(ctx, userID, time.Now().UTC())
	if err != nil {
		h.logger.Error("Roster failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(entries))
}
