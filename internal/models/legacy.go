package models

// User and Product predate the carpet catalog. No route serves them, but
// the user collection still exists in deployed databases and the schemas
// are kept so its documents stay decodable.

type User struct {
	ID       string `json:"id,omitempty"  bson:"-"`
	Name     string `json:"name"          bson:"name"    validate:"required"`
	Email    string `json:"email"         bson:"email"   validate:"required,email"`
	Address  string `json:"address"       bson:"address" validate:"required"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active,omitempty" bson:"is_active"`
}

type Product struct {
	ID          string  `json:"id,omitempty"          bson:"-"`
	Title       string  `json:"title"                 bson:"title" validate:"required"`
	Description string  `json:"description,omitempty" bson:"description"`
	Price       float64 `json:"price"                 bson:"price" validate:"gte=0"`
	Category    string  `json:"category"              bson:"category" validate:"required"`
	InStock     *bool   `json:"in_stock,omitempty"    bson:"in_stock"`
}
