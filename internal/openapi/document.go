package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Title is the API title shown in the document and on the docs page.
const Title = "Estate Core API"

// builder assembles paths against a fixed set of component schemas.
type builder struct {
	schemas openapi3.Schemas
}

func (b builder) ref(name string) *openapi3.SchemaRef {
	return ref(name, b.schemas[name].Value)
}

func (b builder) jsonResponse(description, schema string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description).WithJSONSchemaRef(b.ref(schema)),
	}
}

func (b builder) errorResponse(status int) *openapi3.ResponseRef {
	return b.jsonResponse(http.StatusText(status), SchemaError)
}

func (b builder) body(schema, description string) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithDescription(description).
			WithRequired(true).
			WithJSONSchemaRef(b.ref(schema)),
	}
}

// operation builds an operation answering status with schema, plus the given error statuses.
func (b builder) operation(id, tag, summary string, status int, schema string, errs ...int) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Tags = []string{tag}

	responses := []openapi3.NewResponsesOption{
		openapi3.WithStatus(status, b.jsonResponse(http.StatusText(status), schema)),
	}
	for _, code := range errs {
		responses = append(responses, openapi3.WithStatus(code, b.errorResponse(code)))
	}
	op.Responses = openapi3.NewResponses(responses...)
	return op
}

func idParameter() *openapi3.ParameterRef {
	p := openapi3.NewPathParameter("id").
		WithSchema(openapi3.NewIntegerSchema()).
		WithDescription("Listing id. Non-integer values match no listing.")
	return &openapi3.ParameterRef{Value: p}
}

func sortParameters() openapi3.Parameters {
	fields := make([]any, 0, 6)
	for _, f := range []string{"id", "manager_name", "address", "rooms_count", "total_area", "price"} {
		fields = append(fields, f)
	}

	sortBy := openapi3.NewQueryParameter("sort_by").
		WithSchema(openapi3.NewStringSchema()).
		WithDescription("Field to sort by. Unknown fields keep insertion order.")
	sortBy.Schema.Value.Enum = fields

	order := openapi3.NewQueryParameter("order").
		WithSchema(openapi3.NewStringSchema().WithDefault("asc")).
		WithDescription("asc or desc (case-insensitive). Anything else sorts ascending.")

	return openapi3.Parameters{{Value: sortBy}, {Value: order}}
}

// Build returns the OpenAPI document for the API.
func Build(version string) *openapi3.T {
	components := openapi3.NewComponents()
	components.Schemas = componentSchemas()
	b := builder{schemas: components.Schemas}

	const (
		tagProperty = "property"
		tagList     = "list"
		tagMain     = "main"
	)

	listProps := b.operation("listProperties", tagProperty, "List listings", http.StatusOK, SchemaPropertyList)
	listProps.Parameters = sortParameters()

	createProp := b.operation("createProperty", tagProperty, "Create a listing", http.StatusCreated, SchemaProperty, http.StatusBadRequest)
	createProp.RequestBody = b.body(SchemaPropertyInput, "The new listing")

	getProp := b.operation("getProperty", tagProperty, "Fetch a listing", http.StatusOK, SchemaProperty, http.StatusNotFound)
	updateProp := b.operation("updateProperty", tagProperty, "Merge fields into a listing", http.StatusOK, SchemaProperty,
		http.StatusBadRequest, http.StatusNotFound)
	updateProp.RequestBody = b.body(SchemaPropertyPatch, "Fields to change")
	deleteProp := b.operation("deleteProperty", tagProperty, "Delete a listing", http.StatusOK, SchemaDeleted, http.StatusNotFound)

	replaceList := b.operation("replaceList", tagList, "Replace the list", http.StatusOK, SchemaArray, http.StatusBadRequest)
	replaceList.RequestBody = b.body(SchemaArrayInput, "The new list contents")

	paths := openapi3.NewPaths()
	paths.Set("/property/", &openapi3.PathItem{Get: listProps, Post: createProp})
	paths.Set("/property/stats", &openapi3.PathItem{
		Get: b.operation("propertyStats", tagProperty, "Average, maximum and minimum of numeric fields",
			http.StatusOK, SchemaPropertyStats, http.StatusNotFound),
	})
	paths.Set("/property/{id}", &openapi3.PathItem{
		Parameters: openapi3.Parameters{idParameter()},
		Get:        getProp,
		Put:        updateProp,
		Delete:     deleteProp,
	})
	paths.Set("/list/", &openapi3.PathItem{
		Get:  b.operation("getList", tagList, "Read the list", http.StatusOK, SchemaArray),
		Post: replaceList,
	})
	paths.Set("/list/minmax", &openapi3.PathItem{
		Get: b.operation("listMinMax", tagList, "Byte-wise smallest and largest element", http.StatusOK, SchemaMinMax, http.StatusNotFound),
	})
	paths.Set("/main/", &openapi3.PathItem{
		Get:  b.operation("getMain", tagMain, "Acknowledge a GET", http.StatusOK, SchemaStatus),
		Post: b.operation("postMain", tagMain, "Acknowledge a POST", http.StatusOK, SchemaStatus),
	})

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       Title,
			Description: "In-memory property listings and a string list.",
			Version:     version,
		},
		Tags: openapi3.Tags{
			{Name: tagProperty, Description: "Property listings"},
			{Name: tagList, Description: "Ordered list of strings"},
			{Name: tagMain, Description: "Status stubs"},
		},
		Paths:      paths,
		Components: &components,
	}
}

// MarshalJSON encodes doc with indentation.
func MarshalJSON(doc *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}
	return data, nil
}

// MarshalYAML encodes doc as block-style YAML, keeping the JSON key order.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}

	// JSON is valid YAML; decoding into a Node keeps key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("converting openapi document to yaml: %w", err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi yaml: %w", err)
	}
	return out, nil
}

// blockStyle clears JSON-derived styling. The encoder still quotes
// strings that would otherwise read back as numbers or booleans.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		blockStyle(child)
	}
}
