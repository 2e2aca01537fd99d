// Package rest hosts the presentation/persistence shell as a JSON API: it
// renders the tables, accepts on-hand edits, writes them back, and serves the
// snapshot export. Each session owns its own editable stock table; unsynced
// edits are never visible to other sessions.
package rest

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/services"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/repositories"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/infrastructure/logging"
)

// Server serves the inventory session API over one backing store
type Server struct {
	store  repositories.InventoryStore
	logger *logging.Logger

	// Worksheet titles, used for the snapshot sheet names.
	usageSheet string
	stockSheet string

	mu       sync.RWMutex
	sessions map[string]*services.PlanningSession
}

// NewServer creates a server over the given store
func NewServer(store repositories.InventoryStore, logger *logging.Logger, usageSheet, stockSheet string) *Server {
	return &Server{
		store:      store,
		logger:     logger,
		usageSheet: usageSheet,
		stockSheet: stockSheet,
		sessions:   make(map[string]*services.PlanningSession),
	}
}

// Handler returns the routed HTTP handler wrapped with request logging
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}/tables", s.handleTables)
	mux.HandleFunc("PUT /api/sessions/{id}/stock", s.handleEditStock)
	mux.HandleFunc("GET /api/sessions/{id}/feasibility", s.handleFeasibility)
	mux.HandleFunc("POST /api/sessions/{id}/sync", s.handleSync)
	mux.HandleFunc("POST /api/sessions/{id}/revert", s.handleRevert)
	mux.HandleFunc("GET /api/sessions/{id}/snapshot.xlsx", s.handleSnapshot)

	return s.logger.HTTPMiddleware(mux)
}

func (s *Server) addSession(session *services.PlanningSession) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	return id
}

func (s *Server) session(r *http.Request) (*services.PlanningSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[r.PathValue("id")]
	return session, ok
}
