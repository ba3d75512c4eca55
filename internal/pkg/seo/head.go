package seo

import (
	"bytes"
	"html/template"

	"github.com/goccy/go-json"
)

var headTemplate = template.Must(template.New("head").Funcs(template.FuncMap{
	"jsonld": func(document map[string]interface{}) (template.JS, error) {
		encoded, err := json.Marshal(document)
		if err != nil {
			return "", err
		}
		return template.JS(encoded), nil
	},
}).Parse(`<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta name="robots" content="{{.Robots}}">
<link rel="canonical" href="{{.Canonical}}">
<meta property="og:type" content="{{.OpenGraph.Type}}">
<meta property="og:title" content="{{.OpenGraph.Title}}">
<meta property="og:description" content="{{.OpenGraph.Description}}">
<meta property="og:url" content="{{.OpenGraph.URL}}">
<meta property="og:site_name" content="{{.OpenGraph.SiteName}}">
<meta property="og:locale" content="{{.OpenGraph.Locale}}">
{{- if .OpenGraph.Image}}
<meta property="og:image" content="{{.OpenGraph.Image}}">
{{- end}}
{{- range .JSONLD}}
<script type="application/ld+json">{{jsonld .}}</script>
{{- end}}
`))

// RenderHead renders the <head> fragment with every value escaped for its
// context.
func RenderHead(metadata *Metadata) (template.HTML, error) {
	var buf bytes.Buffer
	if err := headTemplate.Execute(&buf, metadata); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
