// internal/client/remote/source.go

// Package remote fetches catalog data from the storefront backend and maps
// wire records into the client product shape.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kccr/storefront/internal/client/catalog"
)

// DefaultTimeout bounds every catalog request; a stalled call fails as a
// network error instead of hanging the listing screen.
const DefaultTimeout = 10 * time.Second

// Source reads products from the backend REST API. baseURL points at the
// API root (e.g. "https://api.example.com/api").
type Source struct {
	baseURL string
	client  *http.Client
}

// NewSource builds a Source. A nil client gets the default with
// DefaultTimeout applied.
func NewSource(baseURL string, client *http.Client) *Source {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Source{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// Page is one slice of the catalog plus enough bookkeeping for the listing
// pipeline to know whether more pages exist.
type Page struct {
	Items    []catalog.Product
	Total    int
	PageNum  int
	PageSize int
}

// SearchParams are the server-side contains filters; empty fields are
// omitted from the query.
type SearchParams struct {
	Category    string
	Brand       string
	GlutenFree  string
	Store       string
	WeightLabel string
}

// wireProduct is the backend record: numeric id, nullable metadata.
type wireProduct struct {
	ID                int64   `json:"id"`
	Category          string  `json:"categoria"`
	Brand             string  `json:"marca"`
	Detail            *string `json:"detalle"`
	ImageURL          *string `json:"imgProd"`
	Seal              *string `json:"sello"`
	Certifier         *string `json:"certifica"`
	Pol               *string `json:"pol"`
	SealLogoURL       *string `json:"logoSello"`
	GlutenFree        *string `json:"gf"`
	GlutenFreeLogoURL *string `json:"logoGf"`
	Store             *string `json:"tienda"`
	WeightLabel       *string `json:"pesaj"`
}

type wirePage struct {
	Items    []wireProduct `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// List fetches the full catalog ordered by brand.
func (s *Source) List(ctx context.Context) ([]catalog.Product, error) {
	var wire []wireProduct
	if err := s.get(ctx, "/productos", nil, &wire); err != nil {
		return nil, err
	}
	return mapProducts(wire), nil
}

// ListPage fetches one 1-indexed page of the catalog.
func (s *Source) ListPage(ctx context.Context, page, pageSize int) (Page, error) {
	if page < 1 {
		return Page{}, fmt.Errorf("page must be positive, got %d", page)
	}
	if pageSize < 1 {
		return Page{}, fmt.Errorf("pageSize must be positive, got %d", pageSize)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var wire wirePage
	if err := s.get(ctx, "/productos/paged", query, &wire); err != nil {
		return Page{}, err
	}

	return Page{
		Items:    mapProducts(wire.Items),
		Total:    wire.Total,
		PageNum:  wire.Page,
		PageSize: wire.PageSize,
	}, nil
}

// GetByID fetches a single product; a backend 404 becomes ErrNotFound.
func (s *Source) GetByID(ctx context.Context, id string) (catalog.Product, error) {
	var wire wireProduct
	if err := s.get(ctx, "/productos/"+url.PathEscape(id), nil, &wire); err != nil {
		return catalog.Product{}, err
	}
	return mapProduct(wire), nil
}

// Search runs the server-side filtered listing.
func (s *Source) Search(ctx context.Context, params SearchParams) ([]catalog.Product, error) {
	query := url.Values{}
	if params.Category != "" {
		query.Set("categoria", params.Category)
	}
	if params.Brand != "" {
		query.Set("marca", params.Brand)
	}
	if params.GlutenFree != "" {
		query.Set("gf", params.GlutenFree)
	}
	if params.Store != "" {
		query.Set("tienda", params.Store)
	}
	if params.WeightLabel != "" {
		query.Set("pesaj", params.WeightLabel)
	}

	var wire []wireProduct
	if err := s.get(ctx, "/productos/search", query, &wire); err != nil {
		return nil, err
	}
	return mapProducts(wire), nil
}

// get performs one GET and decodes the body, translating failures into the
// package error taxonomy.
func (s *Source) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: readErrorMessage(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrNetwork, err)
	}
	return nil
}

func readErrorMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}

func mapProducts(wire []wireProduct) []catalog.Product {
	products := make([]catalog.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, mapProduct(w))
	}
	return products
}

func mapProduct(w wireProduct) catalog.Product {
	return catalog.Product{
		ID:                strconv.FormatInt(w.ID, 10),
		Category:          w.Category,
		Brand:             w.Brand,
		Detail:            deref(w.Detail),
		ImageURL:          deref(w.ImageURL),
		Seal:              deref(w.Seal),
		Certifier:         deref(w.Certifier),
		Pol:               deref(w.Pol),
		SealLogoURL:       deref(w.SealLogoURL),
		GlutenFree:        deref(w.GlutenFree),
		GlutenFreeLogoURL: deref(w.GlutenFreeLogoURL),
		Store:             deref(w.Store),
		WeightLabel:       deref(w.WeightLabel),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
