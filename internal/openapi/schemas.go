package openapi

import "github.com/getkin/kin-openapi/openapi3"

// Component schema names.
const (
	SchemaProperty      = "Property"
	SchemaPropertyInput = "PropertyInput"
	SchemaPropertyPatch = "PropertyPatch"
	SchemaPropertyList  = "PropertyList"
	SchemaPropertyStats = "PropertyStats"
	SchemaDeleted       = "Deleted"
	SchemaArrayInput    = "ArrayInput"
	SchemaArray         = "Array"
	SchemaMinMax        = "MinMax"
	SchemaStatus        = "Status"
	SchemaError         = "Error"
)

// ref points at a component schema and carries its resolved value.
func ref(name string, value *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, value)
}

// propertyFields returns the writable listing fields.
func propertyFields() openapi3.Schemas {
	return openapi3.Schemas{
		"manager_name": openapi3.NewStringSchema().WithMinLength(1).NewRef(),
		"address":      openapi3.NewStringSchema().WithMinLength(1).NewRef(),
		"rooms_count":  openapi3.NewIntegerSchema().WithMin(0).NewRef(),
		"total_area":   openapi3.NewFloat64Schema().WithMin(0).NewRef(),
		"price":        openapi3.NewInt64Schema().WithMin(0).NewRef(),
	}
}

var writableFields = []string{"manager_name", "address", "rooms_count", "total_area", "price"}

// componentSchemas returns every named schema in the document.
func componentSchemas() openapi3.Schemas {
	property := openapi3.NewObjectSchema()
	property.Properties = propertyFields()
	property.Properties["id"] = openapi3.NewIntegerSchema().WithMin(1).NewRef()
	property.Required = append([]string{"id"}, writableFields...)
	property.Description = "A property listing."

	input := openapi3.NewObjectSchema()
	input.Properties = propertyFields()
	input.Required = writableFields
	input.Description = "A new listing. Every field is required; any id is ignored."

	patch := openapi3.NewObjectSchema()
	patch.Properties = propertyFields()
	patch.Description = "Fields to change on an existing listing. Omitted fields are kept."

	list := openapi3.NewObjectSchema()
	list.Properties = openapi3.Schemas{
		"properties": {Value: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeArray}, Items: ref(SchemaProperty, property)}},
		"count":      openapi3.NewIntegerSchema().NewRef(),
	}
	list.Required = []string{"properties", "count"}

	stats := openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewFloat64Schema())
	stats.Description = "Flat aggregates keyed <field>_avg, <field>_max and <field>_min."

	deleted := openapi3.NewObjectSchema()
	deleted.Properties = openapi3.Schemas{
		"status": openapi3.NewStringSchema().WithEnum("deleted").NewRef(),
		"id":     openapi3.NewIntegerSchema().NewRef(),
	}
	deleted.Required = []string{"status", "id"}

	arrayInput := openapi3.NewObjectSchema()
	arrayInput.Properties = openapi3.Schemas{
		"array": openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()).NewRef(),
	}
	arrayInput.Required = []string{"array"}

	array := openapi3.NewObjectSchema()
	array.Properties = openapi3.Schemas{
		"len":   openapi3.NewStringSchema().WithPattern(`^[0-9]+$`).NewRef(),
		"array": openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()).NewRef(),
	}
	array.Required = []string{"len", "array"}

	minMax := openapi3.NewObjectSchema()
	minMax.Properties = openapi3.Schemas{
		"min": openapi3.NewStringSchema().NewRef(),
		"max": openapi3.NewStringSchema().NewRef(),
	}
	minMax.Required = []string{"min", "max"}

	status := openapi3.NewObjectSchema()
	status.Properties = openapi3.Schemas{"status": openapi3.NewStringSchema().NewRef()}
	status.Required = []string{"status"}

	apiErr := openapi3.NewObjectSchema()
	apiErr.Properties = openapi3.Schemas{
		"status":  openapi3.NewIntegerSchema().NewRef(),
		"code":    openapi3.NewStringSchema().NewRef(),
		"message": openapi3.NewStringSchema().NewRef(),
		"details": openapi3.NewObjectSchema().NewRef(),
	}
	apiErr.Required = []string{"status", "code", "message"}

	return openapi3.Schemas{
		SchemaProperty:      property.NewRef(),
		SchemaPropertyInput: input.NewRef(),
		SchemaPropertyPatch: patch.NewRef(),
		SchemaPropertyList:  list.NewRef(),
		SchemaPropertyStats: stats.NewRef(),
		SchemaDeleted:       deleted.NewRef(),
		SchemaArrayInput:    arrayInput.NewRef(),
		SchemaArray:         array.NewRef(),
		SchemaMinMax:        minMax.NewRef(),
		SchemaStatus:        status.NewRef(),
		SchemaError:         apiErr.NewRef(),
	}
}
