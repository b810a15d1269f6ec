package api

import (
	"errors"
	"net/http"

	"github.com/nerrad567/estate-core/internal/array"
	"github.com/nerrad567/estate-core/internal/audit"
	"github.com/nerrad567/estate-core/internal/openapi"
)

// listInput is the body of POST /list.
type listInput struct {
	Array []string `json:"array"`
}

// handleGetList returns the list with its length.
func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.array.Get(r.Context()))
}

// handleReplaceList replaces the whole list.
func (s *Server) handleReplaceList(w http.ResponseWriter, r *http.Request) {
	var in listInput
	if err := s.decodeBody(r, openapi.SchemaArrayInput, &in); err != nil {
		if writeInputError(w, err) {
			return
		}
		s.logger.Error("reading list body failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	snap := s.array.Replace(r.Context(), in.Array)

	s.publishChange(r.Context(), change{
		resource: ResourceList,
		action:   audit.ActionReplace,
		payload:  snap,
		details:  map[string]any{"len": snap.Len},
	})

	writeJSON(w, http.StatusOK, snap)
}

// handleListMinMax returns the byte-wise smallest and largest elements.
func (s *Server) handleListMinMax(w http.ResponseWriter, r *http.Request) {
	ext, err := s.array.MinMax(r.Context())
	if err != nil {
		if errors.Is(err, array.ErrEmptyCollection) {
			writeNotFound(w, "list is empty")
			return
		}
		s.logger.Error("list minmax failed", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ext)
}
