// internal/client/catalog/filter.go
package catalog

import (
	"strings"
)

// Criteria narrows the visible product subset. An empty field means "All"
// and never excludes anything. Categorical fields match by normalized
// equality; Search matches by normalized substring across the presentation
// fields.
type Criteria struct {
	Category   string `json:"categoria,omitempty"`
	Brand      string `json:"marca,omitempty"`
	Store      string `json:"tienda,omitempty"`
	GlutenFree string `json:"gf,omitempty"`
	Search     string `json:"search,omitempty"`
}

// IsZero reports whether no filter field is set.
func (c Criteria) IsZero() bool {
	return norm(c.Category) == "" &&
		norm(c.Brand) == "" &&
		norm(c.Store) == "" &&
		norm(c.GlutenFree) == "" &&
		norm(c.Search) == ""
}

func norm(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Apply returns the products satisfying every set criterion, preserving
// their relative order. It is pure and idempotent.
func Apply(products []Product, criteria Criteria) []Product {
	if criteria.IsZero() {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, criteria) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, c Criteria) bool {
	nBrand := norm(p.Brand)
	nDetail := norm(p.Detail)
	nStore := norm(p.Store)
	nCategory := norm(p.Category)
	nGf := norm(p.GlutenFree)

	if s := norm(c.Search); s != "" {
		hit := strings.Contains(nBrand, s) ||
			strings.Contains(nDetail, s) ||
			strings.Contains(nStore, s) ||
			strings.Contains(nCategory, s) ||
			strings.Contains(nGf, s)
		if !hit {
			return false
		}
	}

	if v := norm(c.Category); v != "" && nCategory != v {
		return false
	}
	if v := norm(c.Brand); v != "" && nBrand != v {
		return false
	}
	if v := norm(c.Store); v != "" && nStore != v {
		return false
	}
	if v := norm(c.GlutenFree); v != "" && nGf != v {
		return false
	}

	return true
}

// FilterOptions are the distinct values observed in the loaded product set,
// used to populate the filter pickers. Values keep their original casing;
// duplicates differing only in case or surrounding space collapse to the
// first occurrence. Order is order of first appearance.
type FilterOptions struct {
	Categories  []string `json:"categorias"`
	Brands      []string `json:"marcas"`
	Stores      []string `json:"tiendas"`
	GlutenFrees []string `json:"gfs"`
}

// Options derives picker values from the currently loaded products only;
// pages not yet fetched contribute nothing until they arrive.
func Options(products []Product) FilterOptions {
	return FilterOptions{
		Categories:  distinct(products, func(p Product) string { return p.Category }),
		Brands:      distinct(products, func(p Product) string { return p.Brand }),
		Stores:      distinct(products, func(p Product) string { return p.Store }),
		GlutenFrees: distinct(products, func(p Product) string { return p.GlutenFree }),
	}
}

func distinct(products []Product, field func(Product) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		v := field(p)
		key := norm(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
