// internal/client/remote/source_test.go
package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPageMapsWireFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/productos/paged", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "50", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 7, "categoria": "Snacks", "marca": "Acme", "detalle": "Chips", "tienda": null, "gf": "Si"},
				{"id": 8, "categoria": "Dairy", "marca": "Other", "detalle": null}
			],
			"total": 120,
			"page": 2,
			"pageSize": 50
		}`))
	}))
	defer server.Close()

	source := NewSource(server.URL+"/api", nil)
	page, err := source.ListPage(context.Background(), 2, 50)
	require.NoError(t, err)

	assert.Equal(t, 120, page.Total)
	assert.Equal(t, 2, page.PageNum)
	assert.Equal(t, 50, page.PageSize)
	require.Len(t, page.Items, 2)

	assert.Equal(t, "7", page.Items[0].ID)
	assert.Equal(t, "Acme", page.Items[0].Brand)
	assert.Equal(t, "Si", page.Items[0].GlutenFree)
	assert.Equal(t, "", page.Items[0].Store) // null maps to empty

	assert.Equal(t, "8", page.Items[1].ID)
	assert.Equal(t, "", page.Items[1].Detail)
}

func TestListPageRejectsInvalidParams(t *testing.T) {
	source := NewSource("http://localhost:1", nil)

	_, err := source.ListPage(context.Background(), 0, 50)
	assert.Error(t, err)

	_, err = source.ListPage(context.Background(), 1, 0)
	assert.Error(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Product not found"}`))
	}))
	defer server.Close()

	source := NewSource(server.URL, nil)
	_, err := source.GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))
	defer server.Close()

	source := NewSource(server.URL, nil)
	_, err := source.List(context.Background())

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.Equal(t, "boom", serverErr.Message)
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	// Reserved port with nothing listening.
	source := NewSource("http://127.0.0.1:1", nil)
	_, err := source.List(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestSearchSendsOnlySetParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/productos/search", r.URL.Path)
		assert.Equal(t, "acme", r.URL.Query().Get("marca"))
		assert.False(t, r.URL.Query().Has("categoria"))

		w.Write([]byte(`[{"id": 1, "categoria": "Snacks", "marca": "Acme"}]`))
	}))
	defer server.Close()

	source := NewSource(server.URL, nil)
	products, err := source.Search(context.Background(), SearchParams{Brand: "acme"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestGetByIDMapsProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/productos/7", r.URL.Path)
		w.Write([]byte(`{"id": 7, "categoria": "Snacks", "marca": "Acme", "pesaj": "200g"}`))
	}))
	defer server.Close()

	source := NewSource(server.URL, nil)
	product, err := source.GetByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", product.ID)
	assert.Equal(t, "200g", product.WeightLabel)
}
