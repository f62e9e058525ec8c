package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"weup-connect/internal/repository"
	"weup-connect/internal/service"

	"go.uber.org/zap"
)

const contactsBasePath = "/connect/api/v1/contacts"

// ContactHandler contact roster endpoints
type ContactHandler struct {
	contacts *service.ContactService
	logger   *zap.Logger
}

func NewContactHandler(contacts *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// ServeHTTP dispatches:
//
//	GET    /contacts                      list (seeds starter set on first run)
//	POST   /contacts                      add
//	GET    /contacts/reminders            overdue contacts
//	DELETE /contacts/{id}                 delete
//	POST   /contacts/{id}/lifeline        set exclusive primary
//	POST   /contacts/{id}/interactions    stamp last_contact
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, contactsBasePath)
	rest = strings.Trim(rest, "/")

	switch {
	case rest == "" && r.Method == http.MethodGet:
		h.ListContacts(w, r)
	case rest == "" && r.Method == http.MethodPost:
		h.AddContact(w, r)
	case rest == "reminders" && r.Method == http.MethodGet:
		h.Reminders(w, r)
	case strings.HasSuffix(rest, "/lifeline") && r.Method == http.MethodPost:
		h.SetLifeline(w, r, strings.TrimSuffix(rest, "/lifeline"))
	case strings.HasSuffix(rest, "/interactions") && r.Method == http.MethodPost:
		h.RecordInteraction(w, r, strings.TrimSuffix(rest, "/interactions"))
	case rest != "" && !strings.Contains(rest, "/") && r.Method == http.MethodDelete:
		h.DeleteContact(w, r, rest)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	contacts, err := h.contacts.ListContacts(ctx, userID)
	if err != nil {
		h.logger.Error("ListContacts failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(contacts))
}

func (h *ContactHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	var payload service.AddContactRequest
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}

	contact, err := h.contacts.AddContact(ctx, userID, payload)
	if err != nil {
		h.logger.Error("AddContact failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(contact))
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request, contactID string) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	removed, err := h.contacts.DeleteContact(ctx, userID, contactID)
	if err != nil {
		h.logger.Error("DeleteContact failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"removed": removed}))
}

func (h *ContactHandler) SetLifeline(w http.ResponseWriter, r *http.Request, contactID string) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	if err := h.contacts.SetLifeline(ctx, userID, contactID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			writeJSON(w, http.StatusOK, Fail("contact not found"))
			return
		}
		h.logger.Error("SetLifeline failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"contact_id": contactID, "is_primary": true}))
}

func (h *ContactHandler) RecordInteraction(w http.ResponseWriter, r *http.Request, contactID string) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	var payload struct {
		At *time.Time `json:"at"`
	}
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusOK, Fail("invalid body"))
		return
	}
	at := time.Now().UTC()
	if payload.At != nil {
		at = *payload.At
	}

	if err := h.contacts.RecordInteraction(ctx, userID, contactID, at); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			writeJSON(w, http.StatusOK, Fail("contact not found"))
			return
		}
		h.logger.Error("RecordInteraction failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]any{"contact_id": contactID, "last_contact": at}))
}

func (h *ContactHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromReq(w, r)
	if !ok {
		return
	}

	overdue, err := h.contacts.OverdueContacts(ctx, userID, time.Now().UTC())
	if err != nil {
		h.logger.Error("Reminders failed", zap.Error(err))
		writeJSON(w, http.StatusOK, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(overdue))
}
