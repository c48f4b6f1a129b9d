package models

// Category is one of a fixed set of product classification labels.
type Category string

const (
	Electronics Category = "Electronics"
	Books       Category = "Books"
	Clothing    Category = "Clothing"
	Food        Category = "Food"
)

var categories = []Category{Electronics, Books, Clothing, Food}

// Categories returns the category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory reports whether s names a known category. Matching is case-sensitive.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}
