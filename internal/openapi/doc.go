// Package openapi describes the Estate Core HTTP API as an OpenAPI 3
// document and validates request bodies against its schemas.
//
// The document is built in code with kin-openapi, served at
// /swagger.json and rendered by the Swagger UI page at /docs. Handlers
// call Validator.Body before decoding, so type errors such as a string
// price are rejected with a 400 before any collection is touched.
package openapi
