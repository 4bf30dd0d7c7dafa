package model

// Budget is the price band the caller wants gift suggestions to land in.
// Min <= Max is repaired by the spec builder, not rejected here.
type Budget struct {
	Min      float64 `json:"min" validate:"min=0"`
	Max      float64 `json:"max" validate:"min=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3,alpha"`
}

// Constraints carries hard requirements collected during the conversation.
type Constraints struct {
	ShippingDaysMax  *int     `json:"shipping_days_max,omitempty" validate:"omitempty,min=1"`
	CategoryIncludes []string `json:"category_includes" validate:"dive,min=1"`
	CategoryExcludes []string `json:"category_excludes" validate:"dive,min=1"`
}

// RecipientProfile is the complete recipient description produced by the
// conversational flow. Zero values mean "unknown"; the pipeline never mutates
// the caller's copy.
type RecipientProfile struct {
	Age            int         `json:"age" validate:"min=0"`
	Gender         string      `json:"gender"`
	Occasion       string      `json:"occasion"`
	Relationship   string      `json:"relationship"`
	Budget         Budget      `json:"budget" validate:"required"`
	Interests      []string    `json:"interests" validate:"dive,min=1"`
	FavoriteColor  string      `json:"favorite_color"`
	FavoriteBrands []string    `json:"favorite_brands" validate:"dive,min=1"`
	Constraints    Constraints `json:"constraints"`
}

// IsComplete reports whether every conversational question has been answered.
// Drives meta.profile_filled and next_action in the rendering contract.
func (p RecipientProfile) IsComplete() bool {
	return p.Age > 0 &&
		p.Gender != "" &&
		p.Occasion != "" &&
		p.Relationship != "" &&
		p.FavoriteColor != "" &&
		len(p.Interests) > 0 &&
		len(p.FavoriteBrands) > 0 &&
		p.Budget.Max > 0
}
