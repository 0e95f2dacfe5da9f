package domain

// Cart belongs to exactly one user. Every read and write must verify the
// requester's subject against Owner; there is no admin override for carts.
type Cart struct {
	ID    string   `json:"id"`
	Owner string   `json:"owner"`
	Items []string `json:"items"`
}

// Contains reports whether the cart holds the given product id.
func (c *Cart) Contains(productID string) bool {
	for _, item := range c.Items {
		if item == productID {
			return true
		}
	}
	return false
}
