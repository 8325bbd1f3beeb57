package models

// The demo catalogs are fixed at process start and never written. Accessors
// hand out copies so callers cannot mutate the shared values.

var products = []Product{
	{ID: "1", Name: "Product 1", Price: 1000, Category: "electronics"},
	{ID: "2", Name: "Product 2", Price: 2000, Category: "books"},
	{ID: "3", Name: "Product 3", Price: 3000, Category: "electronics"},
}

var categories = []Category{
	{ID: "1", Name: "electronics", Description: "Electronic devices and gadgets"},
	{ID: "2", Name: "books", Description: "Books and publications"},
	{ID: "3", Name: "clothing", Description: "Apparel and fashion items"},
}

// DefaultProducts returns the demo product catalog
func DefaultProducts() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// DefaultCategories returns the demo category catalog
func DefaultCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FilterByCategory returns the products whose category equals category.
// An empty category matches everything.
func FilterByCategory(items []Product, category string) []Product {
	if category == "" {
		return items
	}

	filtered := make([]Product, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
