// internal/client/catalog/product.go

// Package catalog holds the client-side product projection and the pure
// filtering helpers the listing screens run over locally loaded pages.
package catalog

// Product is the read-side projection the app renders. The id is the only
// identity: de-duplication across pages and favorites membership both key on
// it. Optional metadata fields use the empty string for "absent".
type Product struct {
	ID                string `json:"id"`
	Category          string `json:"categoria"`
	Brand             string `json:"marca"`
	Detail            string `json:"detalle"`
	ImageURL          string `json:"imgProd,omitempty"`
	Seal              string `json:"sello,omitempty"`
	Certifier         string `json:"certifica,omitempty"`
	Pol               string `json:"pol,omitempty"`
	SealLogoURL       string `json:"logoSello,omitempty"`
	GlutenFree        string `json:"gf,omitempty"`
	GlutenFreeLogoURL string `json:"logoGf,omitempty"`
	Store             string `json:"tienda,omitempty"`
	WeightLabel       string `json:"pesaj,omitempty"`
}
