// internal/models/product.go
package models

// Product is a kosher-certified catalog entry. JSON tags follow the wire
// names the mobile app and the legacy importer already depend on.
type Product struct {
	BaseModel
	Category          string `json:"categoria" gorm:"size:100;not null;index"`
	Brand             string `json:"marca" gorm:"size:255;not null;index"`
	Detail            string `json:"detalle" gorm:"type:text"`
	ImageURL          string `json:"imgProd" gorm:"size:512"`
	Seal              string `json:"sello" gorm:"size:100"`
	Certifier         string `json:"certifica" gorm:"size:255"`
	Pol               string `json:"pol" gorm:"size:100"`
	SealLogoURL       string `json:"logoSello" gorm:"size:512"`
	GlutenFree        string `json:"gf" gorm:"size:50;index"`
	GlutenFreeLogoURL string `json:"logoGf" gorm:"size:512"`
	Store             string `json:"tienda" gorm:"size:255;index"`
	WeightLabel       string `json:"pesaj" gorm:"size:100"`
}
