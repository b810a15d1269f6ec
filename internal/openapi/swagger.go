package openapi

import (
	"bytes"
	"html/template"
)

// swaggerUIVersion pins the Swagger UI assets loaded from the CDN.
const swaggerUIVersion = "5.17.14"

var swaggerPage = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@{{.Version}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@{{.Version}}/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`))

// SwaggerUI renders the documentation page that loads the document from specURL.
func SwaggerUI(specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := swaggerPage.Execute(&buf, struct {
		Title   string
		Version string
		SpecURL string
	}{Title, swaggerUIVersion, specURL})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
