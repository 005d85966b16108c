package models

// CartItems is the nested cart mapping: productID → size → quantity.
// Entries with a quantity of zero or less are never stored; they are
// removed instead, and a product with no sizes left is removed outright.
type CartItems map[string]map[string]int

// Add increments the quantity for (productID, size) by one.
func (c CartItems) Add(productID, size string) {
	sizes, ok := c[productID]
	if !ok {
		sizes = make(map[string]int)
		c[productID] = sizes
	}
	sizes[size]++
}

// Set stores an absolute quantity for (productID, size). A quantity of
// zero or less removes the entry, and the product entry as well if that
// was its last size.
func (c CartItems) Set(productID, size string, quantity int) {
	if quantity <= 0 {
		sizes, ok := c[productID]
		if !ok {
			return
		}
		delete(sizes, size)
		if len(sizes) == 0 {
			delete(c, productID)
		}
		return
	}
	sizes, ok := c[productID]
	if !ok {
		sizes = make(map[string]int)
		c[productID] = sizes
	}
	sizes[size] = quantity
}

// Count sums every quantity across all products and sizes.
func (c CartItems) Count() int {
	total := 0
	for _, sizes := range c {
		for _, qty := range sizes {
			total += qty
		}
	}
	return total
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the live map.
func (c CartItems) Clone() CartItems {
	out := make(CartItems, len(c))
	for pid, sizes := range c {
		cp := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			cp[size] = qty
		}
		out[pid] = cp
	}
	return out
}
