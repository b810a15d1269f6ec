package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/estate-core/internal/audit"
	"github.com/nerrad567/estate-core/internal/openapi"
	"github.com/nerrad567/estate-core/internal/property"
)

// propertyListResponse is the body of GET /property.
type propertyListResponse struct {
	Properties []property.Property `json:"properties"`
	Count      int                 `json:"count"`
}

// deletedResponse is the body of DELETE /property/{id}.
type deletedResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

// propertyID parses the {id} URL parameter. A value that is not an
// integer can never name a listing, so it is reported as not found.
func propertyID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeNotFound(w, fmt.Sprintf("property %s not found", raw))
		return 0, false
	}
	return id, true
}

// handleListProperties returns every listing, optionally sorted.
//
// Query parameters:
//   - sort_by: id, manager_name, address, rooms_count, total_area or price
//   - order: asc (default) or desc
func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if sortBy := q.Get("sort_by"); sortBy != "" && !property.IsSortField(sortBy) {
		s.logger.Debug("ignoring unknown sort field", "sort_by", sortBy)
	}
	items, err := s.properties.List(r.Context(), property.ListOptions{
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	})
	if err != nil {
		s.logger.Error("listing properties failed", "error", err)
		writeInternalError(w, "failed to list properties")
		return
	}
	if items == nil {
		items = []property.Property{}
	}

	writeJSON(w, http.StatusOK, propertyListResponse{Properties: items, Count: len(items)})
}

// handleCreateProperty validates and stores a new listing.
func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var fields property.Fields
	if err := s.decodeBody(r, openapi.SchemaPropertyInput, &fields); err != nil {
		s.writePropertyError(w, err, 0)
		return
	}

	created, err := s.properties.Create(r.Context(), fields)
	if err != nil {
		s.writePropertyError(w, err, 0)
		return
	}

	s.publishChange(r.Context(), change{
		resource: ResourceProperty,
		action:   audit.ActionCreate,
		entityID: strconv.Itoa(created.ID),
		payload:  created,
		details:  map[string]any{"property": created},
	})

	writeJSON(w, http.StatusCreated, created)
}

// handlePropertyStats returns avg/max/min of the numeric fields, flattened
// to price_avg, price_max, price_min and so on.
func (s *Server) handlePropertyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.properties.Stats(r.Context())
	if err != nil {
		if errors.Is(err, property.ErrEmptyCollection) {
			writeNotFound(w, "no properties to aggregate")
			return
		}
		s.logger.Error("computing property stats failed", "error", err)
		writeInternalError(w, "failed to compute statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats.Flat())
}

// handleGetProperty returns a single listing.
func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	p, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.writePropertyError(w, err, id)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// handleUpdateProperty merges the supplied fields into a listing.
// Omitted fields are kept; the merged listing must still be valid.
func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	var patch property.Patch
	if err := s.decodeBody(r, openapi.SchemaPropertyPatch, &patch); err != nil {
		s.writePropertyError(w, err, id)
		return
	}

	updated, err := s.properties.Update(r.Context(), id, patch)
	if err != nil {
		s.writePropertyError(w, err, id)
		return
	}

	s.publishChange(r.Context(), change{
		resource: ResourceProperty,
		action:   audit.ActionUpdate,
		entityID: strconv.Itoa(id),
		payload:  updated,
		details: map[string]any{
			"changed":  patch.Changed(),
			"property": updated,
		},
	})

	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteProperty removes a listing. Its id is never reissued.
func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(w, r)
	if !ok {
		return
	}

	if err := s.properties.Delete(r.Context(), id); err != nil {
		s.writePropertyError(w, err, id)
		return
	}

	resp := deletedResponse{Status: "deleted", ID: id}
	s.publishChange(r.Context(), change{
		resource: ResourceProperty,
		action:   audit.ActionDelete,
		entityID: strconv.Itoa(id),
		payload:  resp,
	})

	writeJSON(w, http.StatusOK, resp)
}

// writePropertyError maps property and request errors to HTTP responses.
func (s *Server) writePropertyError(w http.ResponseWriter, err error, id int) {
	if writeInputError(w, err) {
		return
	}
	if errors.Is(err, property.ErrNotFound) {
		writeNotFound(w, fmt.Sprintf("property %d not found", id))
		return
	}

	s.logger.Error("property request failed", "id", id, "error", err)
	writeInternalError(w, "internal server error")
}
