package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Render executes a template text against the parameter set. Template
// parse or execution errors are surfaced to the caller, which records
// them as a per-artifact skip.
func Render(name, text string, params Params) (string, error) {
	funcMap := template.FuncMap{
		"join": func(items []string, sep string) string { return strings.Join(items, sep) },
	}
	tmpl, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}
