package models

// OrderItem references a carpet by id only; the reference is not checked
// against the catalog. A nil Quantity defaults to 1 before validation.
type OrderItem struct {
	CarpetID string   `json:"carpet_id"          bson:"carpet_id" validate:"required"`
	Quantity *int     `json:"quantity,omitempty" bson:"quantity"  validate:"omitempty,gte=1"`
	PriceUSD *float64 `json:"price_usd"          bson:"price_usd" validate:"required,gte=0"`
}
