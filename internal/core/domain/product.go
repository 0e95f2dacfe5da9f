package domain

// Product is a catalog entry. It carries no owner: any admin may mutate it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Sortable product list fields. Any other field is rejected at the API edge.
const (
	SortFieldName  = "name"
	SortFieldPrice = "price"
)

// Price filter operators, mapped 1:1 onto the document store's comparison
// operators.
const (
	PriceOpGT  = "gt"
	PriceOpLT  = "lt"
	PriceOpGTE = "gte"
	PriceOpLTE = "lte"
)

// ValidSortField reports whether f is an allowed sort field.
func ValidSortField(f string) bool {
	return f == SortFieldName || f == SortFieldPrice
}

// ValidPriceOp reports whether op is an allowed price filter operator.
func ValidPriceOp(op string) bool {
	switch op {
	case PriceOpGT, PriceOpLT, PriceOpGTE, PriceOpLTE:
		return true
	}
	return false
}
