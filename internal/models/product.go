package models

// Product lifecycle statuses.
const (
	ProductStatusActive     = "active"
	ProductStatusLowStock   = "low-stock"
	ProductStatusOutOfStock = "out-of-stock"
	ProductStatusInactive   = "inactive"
)

// ValidProductStatuses defines the known product statuses.
var ValidProductStatuses = map[string]bool{
	ProductStatusActive:     true,
	ProductStatusLowStock:   true,
	ProductStatusOutOfStock: true,
	ProductStatusInactive:   true,
}

// Product represents a shop product record
type Product struct {
	ID            int      `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Slug          string   `json:"slug" db:"slug"`
	Category      *string  `json:"category" db:"category"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice *float64 `json:"originalPrice" db:"original_price"`
	Stock         int      `json:"stock" db:"stock"`
	Sold          int      `json:"sold" db:"sold"`
	Rating        *float64 `json:"rating" db:"rating"`
	ReviewCount   *int     `json:"reviewCount" db:"review_count"`
	Status        string   `json:"status" db:"status"`
	Featured      bool     `json:"featured" db:"featured"`
	Badge         *string  `json:"badge" db:"badge"`
	Image         *string  `json:"image" db:"image"`
	Images        []string `json:"images" db:"images"`
	Description   *string  `json:"description" db:"description"`
	Features      []string `json:"features" db:"features"`
	Sizes         []string `json:"sizes" db:"sizes"`
	Colors        []string `json:"colors" db:"colors"`
	Tags          []string `json:"tags" db:"tags"`
}

// ProductInput carries the client-editable fields of a product.
// The sold counter and review aggregates come from the storefront.
type ProductInput struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         OptFloat `json:"price"`
	OriginalPrice OptFloat `json:"originalPrice"`
	Stock         OptInt   `json:"stock"`
	Status        string   `json:"status"`
	Featured      bool     `json:"featured"`
	Badge         string   `json:"badge"`
	Image         string   `json:"image"`
	Images        StringList `json:"images"`
	Description   string     `json:"description"`
	Features      StringList `json:"features"`
	Sizes         StringList `json:"sizes"`
	Colors        StringList `json:"colors"`
	Tags          StringList `json:"tags"`
}
