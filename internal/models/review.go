package models

// Review points at a carpet by id; the carpet is not required to exist and
// no back-reference is maintained on it.
type Review struct {
	ID       string `json:"id,omitempty"      bson:"-"`
	CarpetID string `json:"carpet_id"         bson:"carpet_id" validate:"required"`
	Name     string `json:"name"              bson:"name"      validate:"required"`
	Rating   int    `json:"rating"            bson:"rating"    validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment,omitempty" bson:"comment"`
}
