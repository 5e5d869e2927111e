// Package renderer turns a bill-of-quantities report into markdown, ready
// to print raw or through a terminal markdown renderer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// BillRenderOptions holds configuration for rendering a bill report.
type BillRenderOptions struct {
	SkipSuppliers   bool // Do not render the recommended suppliers section.
	SkipAssumptions bool // Do not render the assumptions section.
}

// RenderBill renders the Bill struct to a markdown string.
func RenderBill(b *Bill, opts BillRenderOptions) string {
	partials := map[string]string{
		"bill_title":   "bill_title.md",
		"bill_trades":  "bill_trades.md",
		"bill_summary": "bill_summary.md",
		"bill_sources": "bill_sources.md",
	}

	// An empty file name results in an empty template.
	if opts.SkipAssumptions {
		partials["bill_assumptions"] = ""
	} else {
		partials["bill_assumptions"] = "bill_assumptions.md"
	}
	if opts.SkipSuppliers {
		partials["bill_suppliers"] = ""
	} else {
		partials["bill_suppliers"] = "bill_suppliers.md"
	}

	return renderTemplate("bill", "bill.md", partials, b)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
