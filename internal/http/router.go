package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party routing
// dependency needed for this surface).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterResourceRoutes resource directory + access tracking
func (r *Router) RegisterResourceRoutes(h *ResourceHandler) {
	r.Handle("/connect/api/v1/resources", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListResources(w, req)
	})

	r.Handle("/connect/api/v1/resources/track", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.TrackAccess(w, req)
	})
}

// RegisterContactRoutes contact roster CRUD, lifeline, reminders
func (r *Router) RegisterContactRoutes(h *ContactHandler) {
	r.Handle("/connect/api/v1/contacts", h.ServeHTTP)
	r.Handle("/connect/api/v1/contacts/", h.ServeHTTP)
}

// RegisterActionRoutes next-best-action engine
func (r *Router) RegisterActionRoutes(h *ActionHandler) {
	r.Handle("/connect/api/v1/next-best-action", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.NextBestAction(w, req)
	})
}

// RegisterCaseloadRoutes mentor caseload roster
func (r *Router) RegisterCaseloadRoutes(h *CaseloadHandler) {
	r.Handle("/connect/api/v1/caseload", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Roster(w, req)
	})
}
