package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// errBadJSON is returned when a schema-valid body still cannot be decoded
// into the target type, e.g. an integer outside the Go type's range.
var errBadJSON = errors.New("malformed request body")

// decodeBody reads the request body, validates it against the named
// OpenAPI component schema and decodes it into v.
func (s *Server) decodeBody(r *http.Request, schema string, v any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := s.validator.Body(schema, data); err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", errBadJSON, err)
	}
	return nil
}
