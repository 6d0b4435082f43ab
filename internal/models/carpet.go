package models

// Carpet is a catalog item. The id is assigned by the store on insert and
// is exposed to clients as a plain hex string, never as a driver type.
type Carpet struct {
	ID              string   `json:"id,omitempty"               bson:"-"`
	Title           string   `json:"title"                      bson:"title"             validate:"required"`
	Description     string   `json:"description,omitempty"      bson:"description"`
	Region          string   `json:"region"                     bson:"region"            validate:"required"`
	Style           string   `json:"style"                      bson:"style"             validate:"required"`
	SizeCm          string   `json:"size_cm"                    bson:"size_cm"           validate:"required"`
	Materials       []string `json:"materials"                  bson:"materials"`
	KnotDensityKpsi *int     `json:"knot_density_kpsi,omitempty" bson:"knot_density_kpsi,omitempty" validate:"omitempty,gte=0"`
	AgeYears        *int     `json:"age_years,omitempty"        bson:"age_years,omitempty" validate:"omitempty,gte=0"`
	PriceUSD        *float64 `json:"price_usd"                  bson:"price_usd"         validate:"required,gte=0"`
	Images          []string `json:"images"                     bson:"images"`
	Colors          []string `json:"colors"                     bson:"colors"`
	RarityScore     *float64 `json:"rarity_score,omitempty"     bson:"rarity_score,omitempty" validate:"omitempty,gte=0,lte=1"`
	IsFeatured      bool     `json:"is_featured"                bson:"is_featured"`
	InStock         *bool    `json:"in_stock,omitempty"         bson:"in_stock"`
}
