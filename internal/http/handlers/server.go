package handlers

import (
	"github.com/rogerio-castellano/inventory-form/internal/csrf"
	"github.com/rogerio-castellano/inventory-form/internal/render"
	repo "github.com/rogerio-castellano/inventory-form/internal/repo"
	"go.uber.org/zap"
)

var (
	logger     = zap.NewNop()
	renderer   = render.Must(render.New())
	formTokens *csrf.Tokens

	// newProductRepo builds the product list for a single request.
	newProductRepo = func() repo.ProductRepository {
		return repo.NewSeededProductRepository()
	}
)

func SetLogger(l *zap.Logger) {
	logger = l
}

func SetRenderer(r *render.Renderer) {
	renderer = r
}

// SetFormTokens enables form token checks on POST. Passing nil disables them.
func SetFormTokens(t *csrf.Tokens) {
	formTokens = t
}

func SetProductRepoFactory(f func() repo.ProductRepository) {
	newProductRepo = f
}
