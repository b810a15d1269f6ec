package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrInvalidBody is matched by every error returned from Validator.Body.
var ErrInvalidBody = errors.New("openapi: invalid request body")

// BodyError lists schema violations keyed by JSON pointer ("/price").
// An empty pointer refers to the body as a whole.
type BodyError struct {
	Problems map[string]string
}

func (e *BodyError) Error() string {
	pointers := make([]string, 0, len(e.Problems))
	for p := range e.Problems {
		pointers = append(pointers, p)
	}
	sort.Strings(pointers)

	parts := make([]string, 0, len(pointers))
	for _, p := range pointers {
		if p == "" {
			parts = append(parts, e.Problems[p])
			continue
		}
		parts = append(parts, p+": "+e.Problems[p])
	}
	return ErrInvalidBody.Error() + ": " + strings.Join(parts, "; ")
}

func (e *BodyError) Unwrap() error {
	return ErrInvalidBody
}

// Validator checks request bodies against the document's component schemas.
type Validator struct {
	schemas openapi3.Schemas
}

// NewValidator creates a validator for doc.
func NewValidator(doc *openapi3.T) *Validator {
	return &Validator{schemas: doc.Components.Schemas}
}

// Body parses data as JSON and validates it against the named component schema.
func (v *Validator) Body(schema string, data []byte) error {
	ref, ok := v.schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("openapi: unknown schema %q", schema)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &BodyError{Problems: map[string]string{"": "request body is required"}}
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &BodyError{Problems: map[string]string{"": "request body is not valid JSON"}}
	}

	err := ref.Value.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return &BodyError{Problems: collectProblems(err)}
}

// collectProblems flattens kin-openapi errors into pointer → reason.
func collectProblems(err error) map[string]string {
	problems := map[string]string{}

	var walk func(error)
	walk = func(err error) {
		var multi openapi3.MultiError
		if errors.As(err, &multi) {
			for _, e := range multi {
				walk(e)
			}
			return
		}

		var schemaErr *openapi3.SchemaError
		if errors.As(err, &schemaErr) {
			pointer := ""
			if path := schemaErr.JSONPointer(); len(path) > 0 {
				pointer = "/" + strings.Join(path, "/")
			}
			if _, seen := problems[pointer]; !seen {
				problems[pointer] = schemaErr.Reason
			}
			return
		}

		problems[""] = err.Error()
	}
	walk(err)

	return problems
}
