package holiday

import "time"

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Category  Category
	CreatedAt time.Time
}

// Category classifies a public holiday by the authority that declares it.
type Category string

const (
	CategoryNational Category = "National"
	CategoryRegional Category = "Regional" // Community of Madrid
	CategoryLocal    Category = "Local"    // Madrid city
)

var CategoryValues = []string{
	string(CategoryNational),
	string(CategoryRegional),
	string(CategoryLocal),
}
