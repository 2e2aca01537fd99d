package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/application/services"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/domain/entities"
	"github.com/Bob12345-c/Shotcraft-inventory-V1/pkg/interfaces/cli/output"
)

type usageJSON struct {
	Component string `json:"component"`
	PerCase   string `json:"per_case"`
	UOM       string `json:"uom"`
}

type stockJSON struct {
	Component string `json:"component"`
	OnHand    string `json:"on_hand"`
}

type rowJSON struct {
	Component string `json:"component"`
	UOM       string `json:"uom"`
	OnHand    string `json:"on_hand"`
	PerCase   string `json:"per_case"`
	Required  string `json:"required"`
	Remaining string `json:"remaining"`
}

type tablesResponse struct {
	Usage []usageJSON `json:"usage"`
	Stock []stockJSON `json:"stock"`
}

type feasibilityResponse struct {
	Cases            string    `json:"cases"`
	MaxSellableCases int64     `json:"max_sellable_cases"`
	Display          []rowJSON `json:"display"`
	Shortages        []rowJSON `json:"shortages"`
}

type editStockRequest struct {
	Edits []stockJSON `json:"edits"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := services.NewPlanningSession(r.Context(), s.store)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: s.addSession(session)})
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	resp := tablesResponse{Usage: []usageJSON{}, Stock: []stockJSON{}}
	for _, u := range session.Usage() {
		resp.Usage = append(resp.Usage, usageJSON{
			Component: string(u.Component),
			PerCase:   u.PerCase.String(),
			UOM:       u.UOM,
		})
	}
	for _, row := range session.Stock() {
		resp.Stock = append(resp.Stock, stockJSON{
			Component: string(row.Component),
			OnHand:    row.OnHand.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditStock(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	var req editStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	for _, edit := range req.Edits {
		onHand, err := decimal.NewFromString(edit.OnHand)
		if err != nil {
			// Same leniency as spreadsheet cells: malformed input becomes zero.
			onHand = decimal.Zero
		}
		if err := session.SetOnHand(entities.ComponentName(edit.Component), onHand); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFeasibility(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	cases, err := parseCases(r.URL.Query().Get("cases"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := session.Compute(cases)
	resp := feasibilityResponse{
		Cases:            result.Cases.String(),
		MaxSellableCases: result.MaxSellableCases,
		Display:          rowsJSON(result.DisplayRows),
		Shortages:        rowsJSON(result.ShortageRows),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	if err := session.Sync(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRevert(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}
	if err := session.Revert(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	cases, err := parseCases(r.URL.Query().Get("cases"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := session.Compute(cases)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="Shotcraft_Inventory_Snapshot.xlsx"`)
	if err := output.WriteSnapshotXLSX(w, result, s.usageSheet, s.stockSheet); err != nil {
		s.logger.Error("failed to write snapshot", "error", err)
	}
}

// parseCases reads the order size from the query string. Unlike spreadsheet
// cells this is direct caller input, so a malformed value is rejected rather
// than repaired; an absent value means zero.
func parseCases(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	cases, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid cases value %q", raw)
	}
	return cases, nil
}

func rowsJSON(rows []entities.FeasibilityRow) []rowJSON {
	out := make([]rowJSON, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowJSON{
			Component: string(row.Component),
			UOM:       row.UOM,
			OnHand:    row.OnHand.String(),
			PerCase:   row.PerCase.String(),
			Required:  row.Required.String(),
			Remaining: row.Remaining.String(),
		})
	}
	return out
}

// writeError maps errors to status codes: a usage table missing its mandatory
// columns is a configuration problem, everything else is a boundary failure
// reported as a plain message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var confErr *entities.ConfigError
	if errors.As(err, &confErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	s.logger.Error("store operation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
