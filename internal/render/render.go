// Package render builds the product inventory HTML page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/rogerio-castellano/inventory-form/internal/validation"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "products.html"

// SuccessMessage is shown after a product was added.
const SuccessMessage = "Product added successfully!"

// Page is everything the product page shows.
type Page struct {
	Products   []models.Product
	Categories []models.Category
	Errors     validation.Errors
	Input      validation.ProductForm
	Success    string
	FormToken  string
}

// Renderer renders the product page template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New(pageTemplate).Funcs(template.FuncMap{
		"price":   formatPrice,
		"escaped": escaped,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Must panics when New fails. The templates are embedded, so a failure is a
// programming error.
func Must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes the product page for p to w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if p.Categories == nil {
		p.Categories = models.Categories()
	}
	if err := r.tmpl.ExecuteTemplate(w, pageTemplate, p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// formatPrice renders a price with two decimals and thousands separators,
// rounding half away from zero.
func formatPrice(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return fixed
	}
	return humanize.BigComma(n) + "." + frac
}

// escaped marks product text as safe: it was escaped when the product was
// validated.
func escaped(s string) template.HTML {
	return template.HTML(s)
}
