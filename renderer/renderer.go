// Package renderer turns engine reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// funcs are the formatting helpers available to every template.
var funcs = template.FuncMap{
	"money":  money,
	"signed": signed,
	"pct":    pct,
	"nav":    nav,
}

// money formats a plain amount with two decimals.
func money(v float64) string { return fmt.Sprintf("%.2f", v) }

// signed formats an amount with an explicit sign; zero renders as "-".
func signed(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.2f", v)
}

// pct formats a change percent with an explicit sign.
func pct(v float64) string { return fmt.Sprintf("%+.2f%%", v) }

// nav formats a fund NAV with the customary four decimals.
func nav(v float64) string { return fmt.Sprintf("%.4f", v) }

// render executes one embedded template over data.
func render(name string, data any) string {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}
	tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
