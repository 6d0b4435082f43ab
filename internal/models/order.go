package models

// Order is append-only: created once, never updated. SubtotalUSD is taken
// from the client as-is and is not recomputed from the items.
type Order struct {
	ID              string      `json:"id,omitempty"             bson:"-"`
	CustomerName    string      `json:"customer_name"            bson:"customer_name"    validate:"required"`
	CustomerEmail   string      `json:"customer_email"           bson:"customer_email"   validate:"required"`
	CustomerPhone   string      `json:"customer_phone,omitempty" bson:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"         bson:"shipping_address" validate:"required"`
	Items           []OrderItem `json:"items"                    bson:"items"            validate:"required,dive"`
	SubtotalUSD     *float64    `json:"subtotal_usd"             bson:"subtotal_usd"     validate:"required"`
	UpsellIDs       []string    `json:"upsell_ids"               bson:"upsell_ids"`
	Notes           string      `json:"notes,omitempty"          bson:"notes"`
}
