package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-form/internal/csrf"
	handler "github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-form/internal/repo"
)

var tokenPattern = regexp.MustCompile(`name="_token" value="([^"]+)"`)

func getPage(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ProductsPageHandler(w, req)
	return w
}

func postForm(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.CreateProductHandler(w, req)
	return w
}

func productForm(name, description, price, category string) url.Values {
	return url.Values{
		"name":        {name},
		"description": {description},
		"price":       {price},
		"category":    {category},
	}
}

// enableFormTokens turns on token checks for the duration of the test.
func enableFormTokens(t *testing.T) *csrf.Tokens {
	t.Helper()
	tokens, err := csrf.New([]byte("handler-test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("csrf.New() error = %v", err)
	}
	handler.SetFormTokens(tokens)
	t.Cleanup(func() { handler.SetFormTokens(nil) })
	return tokens
}

func setProductRepo(t *testing.T, f func() repo.ProductRepository) {
	t.Helper()
	handler.SetProductRepoFactory(f)
	t.Cleanup(func() {
		handler.SetProductRepoFactory(func() repo.ProductRepository {
			return repo.NewSeededProductRepository()
		})
	})
}

func extractToken(t *testing.T, body string) string {
	t.Helper()
	m := tokenPattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("form token not found in page")
	}
	return m[1]
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("expected body to contain %q", w)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(body, u) {
			t.Errorf("did not expect body to contain %q", u)
		}
	}
}
