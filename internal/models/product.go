package models

// Product is one catalog entry. The catalog is stored as a single JSON
// blob, so there are no ORM tags here.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"` // URI of the product photo
	Icon        Icon    `json:"icon"`
}

// ProductPatch carries a partial update for a product. Nil fields are
// left as they are.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Icon        *Icon
}
