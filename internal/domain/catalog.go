package domain

// CatalogEntry is a brand or a category. The commerce API models both the
// same way and only the resource path differs.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	Website     string
	Image       string
}
