package category

// Category is a parent node in the two-level category tree. Children are
// attached by the service when listing.
type Category struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Children []Subcategory `json:"children"`
}

type Subcategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
