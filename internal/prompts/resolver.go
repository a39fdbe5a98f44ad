package prompts

import (
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"

	"github.com/lighthouse-data/enricher/internal/models"
)

// Template renders the extraction prompt for one record. Rendering is pure:
// the same record and attribute list always produce the same prompt.
type Template struct {
	name   string
	source string
	env    *stick.Env
}

// Name returns the template's category name, "generic" for the fallback.
func (t *Template) Name() string { return t.name }

// Render produces the prompt text for the record and attribute list.
func (t *Template) Render(record models.ProductRecord, attributes []string) (string, error) {
	ctx := map[string]stick.Value{
		"mpn":          record.MPN,
		"manufacturer": record.Manufacturer,
		"cat_subcat":   record.CatSubcat(),
		"attributes":   strings.Join(attributes, ", "),
	}

	var out strings.Builder
	if err := t.env.Execute(t.source, &out, ctx); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.name, err)
	}
	return out.String(), nil
}

// Resolver maps product categories to prompt templates. Lookup is
// case-insensitive; unknown categories get the generic template.
type Resolver struct {
	env       *stick.Env
	templates map[string]*Template
	generic   *Template
}

// categoryAliases maps normalized category names to template names.
var categoryAliases = map[string]string{
	"electrical":       "electrical",
	"electric":         "electrical",
	"electronics":      "electrical",
	"hvac":             "hvac",
	"heating":          "hvac",
	"air conditioning": "hvac",
	"plumbing":         "plumbing",
	"pipe":             "plumbing",
	"water":            "plumbing",
	"refrigeration":    "refrigeration",
	"refrigerant":      "refrigeration",
	"cooling":          "refrigeration",
}

// NewResolver builds a resolver with the built-in category templates.
func NewResolver() *Resolver {
	env := stick.New(nil)
	mk := func(name, source string) *Template {
		return &Template{name: name, source: source, env: env}
	}
	return &Resolver{
		env: env,
		templates: map[string]*Template{
			"electrical":    mk("electrical", electricalTemplate),
			"hvac":          mk("hvac", hvacTemplate),
			"plumbing":      mk("plumbing", plumbingTemplate),
			"refrigeration": mk("refrigeration", refrigerationTemplate),
		},
		generic: mk("generic", genericTemplate),
	}
}

// Resolve returns the template for category. It never fails: unmatched
// categories fall back to the generic template.
func (r *Resolver) Resolve(category string) *Template {
	name, ok := categoryAliases[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return r.generic
	}
	return r.templates[name]
}
