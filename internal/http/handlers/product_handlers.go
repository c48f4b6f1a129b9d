package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-form/internal/csrf"
	"github.com/rogerio-castellano/inventory-form/internal/render"
	repo "github.com/rogerio-castellano/inventory-form/internal/repo"
	"github.com/rogerio-castellano/inventory-form/internal/validation"
	"go.uber.org/zap"
)

const maxFormBytes = 1 << 20 // one megabyte

// ProductsPageHandler renders the product list with an empty form.
func ProductsPageHandler(w http.ResponseWriter, r *http.Request) {
	renderProductsPage(w, http.StatusOK, newProductRepo(), render.Page{})
}

// CreateProductHandler validates a submitted product. A valid product is
// added to the request's list and a fresh form is shown; otherwise the form
// comes back with inline errors and the submitted values.
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		logger.Debug("malformed form", zap.Error(err))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if formTokens != nil {
		if err := formTokens.Verify(r.PostForm.Get(csrf.FieldName)); err != nil {
			logger.Warn("form token rejected", zap.String("remote_addr", r.RemoteAddr), zap.Error(err))
			http.Error(w, "invalid form token", http.StatusForbidden)
			return
		}
	}

	productRepo := newProductRepo()
	result := validation.ValidateProduct(validation.NewProductForm(r.PostForm), productRepo.Count())
	if !result.Valid() {
		logger.Debug("product rejected", zap.Strings("fields", invalidFields(result.Errors)))
		renderProductsPage(w, http.StatusBadRequest, productRepo, render.Page{
			Errors: result.Errors,
			Input:  result.Input,
		})
		return
	}

	created, err := productRepo.Create(*result.Product)
	if err != nil {
		logger.Error("could not create product", zap.Error(err))
		if errors.Is(err, repo.ErrDuplicatedProductID) {
			http.Error(w, "could not create product: product id duplicated", http.StatusInternalServerError)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	logger.Info("product added",
		zap.Int("id", created.ID),
		zap.String("category", created.Category.String()),
		zap.String("price", created.Price.StringFixed(2)),
	)
	renderProductsPage(w, http.StatusOK, productRepo, render.Page{Success: render.SuccessMessage})
}

// renderProductsPage fills in the products and a form token, then renders
// into a buffer so that a template failure still yields a clean 500.
func renderProductsPage(w http.ResponseWriter, status int, productRepo repo.ProductRepository, page render.Page) {
	products, err := productRepo.GetAll()
	if err != nil {
		logger.Error("could not list products", zap.Error(err))
		http.Error(w, "could not list products", http.StatusInternalServerError)
		return
	}
	page.Products = products

	if formTokens != nil {
		token, err := formTokens.Issue()
		if err != nil {
			logger.Error("could not issue form token", zap.Error(err))
			http.Error(w, "could not render page", http.StatusInternalServerError)
			return
		}
		page.FormToken = token
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		logger.Error("could not render page", zap.Error(err))
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Debug("failed to write response", zap.Error(err))
	}
}

func invalidFields(errs validation.Errors) []string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	return fields
}
