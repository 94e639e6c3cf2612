// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/staffsight/internal/domain/filterstate"
)

// valuesRequest carries a multi-select replacement.
type valuesRequest struct {
	Values []string `json:"values"`
}

// rangeRequest carries an inclusive age range replacement.
type rangeRequest struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// FiltersHandler handles the five filter controls plus reset.
type FiltersHandler struct {
	deps Dependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps Dependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

// HandleMutation handles POST /filters/{control} requests. Every accepted
// mutation recomputes synchronously and responds with the new snapshot,
// so the caller never observes a filter/aggregate mismatch.
func (h *FiltersHandler) HandleMutation(w http.ResponseWriter, r *http.Request) {
	const op = "api.mutate_filter"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	control := strings.TrimPrefix(r.URL.Path, "/filters/")
	ctx := r.Context()

	switch control {
	case "reset":
		writeJSON(w, http.StatusOK, h.deps.ResetFilters(ctx))
		return
	case "age":
		var req rangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		snap, err := h.deps.SetAgeRange(ctx, req.Lo, req.Hi)
		if err != nil {
			if errors.Is(err, filterstate.ErrInvalidRange) {
				writeError(w, http.StatusBadRequest, "invalid_range", Wrap(op, err))
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, snap)
		return
	}

	var req valuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	switch control {
	case "departments":
		writeJSON(w, http.StatusOK, h.deps.SetDepartments(ctx, req.Values))
	case "jobroles":
		writeJSON(w, http.StatusOK, h.deps.SetJobRoles(ctx, req.Values))
	case "genders":
		writeJSON(w, http.StatusOK, h.deps.SetGenders(ctx, req.Values))
	case "attrition":
		writeJSON(w, http.StatusOK, h.deps.SetAttritionStatuses(ctx, req.Values))
	default:
		http.NotFound(w, r)
	}
}
