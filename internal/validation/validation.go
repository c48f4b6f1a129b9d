// Package validation turns raw product form submissions into products or
// field-keyed error messages.
package validation

import (
	"errors"
	"html"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/shopspring/decimal"
)

// ErrorCode classifies a field failure.
type ErrorCode string

const (
	EmptyField      ErrorCode = "EmptyField"
	InvalidPrice    ErrorCode = "InvalidPrice"
	InvalidCategory ErrorCode = "InvalidCategory"
)

// Form field names.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
)

type fieldRule struct {
	code    ErrorCode
	message string
}

var rules = map[string]fieldRule{
	FieldName:        {EmptyField, "Product name is required."},
	FieldDescription: {EmptyField, "Description is required."},
	FieldPrice:       {InvalidPrice, "Price must be a positive number."},
	FieldCategory:    {InvalidCategory, "Please select a valid category."},
}

// FieldError is the failure reported for one form field.
type FieldError struct {
	Code    ErrorCode
	Message string
}

// Errors maps form field names to their failure.
type Errors map[string]FieldError

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Message returns the message for field, or "" when it passed.
func (e Errors) Message(field string) string {
	return e[field].Message
}

// ProductForm holds the submitted product fields as raw strings.
type ProductForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
	Price       string `form:"price" validate:"required,price"`
	Category    string `form:"category" validate:"required,category"`
}

// NewProductForm reads the product fields from submitted form values.
func NewProductForm(values url.Values) ProductForm {
	return ProductForm{
		Name:        values.Get(FieldName),
		Description: values.Get(FieldDescription),
		Price:       values.Get(FieldPrice),
		Category:    values.Get(FieldCategory),
	}.Normalize()
}

// Normalize trims surrounding whitespace from every field.
func (f ProductForm) Normalize() ProductForm {
	return ProductForm{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Price:       strings.TrimSpace(f.Price),
		Category:    strings.TrimSpace(f.Category),
	}
}

// Selects reports whether c is the submitted category.
func (f ProductForm) Selects(c models.Category) bool {
	return f.Category == string(c)
}

// Result is the outcome of validating a form: either Product is set or
// Errors is non-empty. Input always carries the normalized submission.
type Result struct {
	Product *models.Product
	Errors  Errors
	Input   ProductForm
}

// Valid reports whether the form produced a product.
func (r Result) Valid() bool {
	return r.Product != nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("price", isPositiveDecimal)
	_ = v.RegisterValidation("category", isCategory)
	return v
}

// Prices must stay below maxPrice and carry at most maxPriceScale decimal
// places. The exponent is checked first so that no out-of-range value is
// ever rescaled.
const (
	maxPriceExponent = 15
	maxPriceScale    = 10
)

var maxPrice = decimal.New(1, maxPriceExponent)

func isPositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil || !d.IsPositive() {
		return false
	}
	if d.Exponent() > maxPriceExponent || d.Exponent() < -maxPriceScale {
		return false
	}
	return d.LessThan(maxPrice)
}

func isCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseCategory(fl.Field().String())
	return ok
}

// ValidateProduct checks every field of form independently. existing is the
// number of products already listed; a valid product gets ID existing+1.
func ValidateProduct(form ProductForm, existing int) Result {
	form = form.Normalize()
	result := Result{Input: form}

	if err := validate.Struct(form); err != nil {
		result.Errors = toErrors(err)
		return result
	}

	// Both parse calls already succeeded inside the validator.
	price, _ := decimal.NewFromString(form.Price)
	category, _ := models.ParseCategory(form.Category)

	result.Product = &models.Product{
		ID:          existing + 1,
		Name:        html.EscapeString(form.Name),
		Description: html.EscapeString(form.Description),
		Price:       price,
		Category:    models.Category(html.EscapeString(string(category))),
	}
	return result
}

func toErrors(err error) Errors {
	errs := Errors{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a non-struct argument; report every field.
		for field, rule := range rules {
			errs[field] = FieldError{Code: rule.code, Message: rule.message}
		}
		return errs
	}

	for _, fe := range fieldErrs {
		rule, ok := rules[fe.Field()]
		if !ok {
			continue
		}
		errs[fe.Field()] = FieldError{Code: rule.code, Message: rule.message}
	}
	return errs
}
