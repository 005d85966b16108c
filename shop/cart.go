package shop

import (
	"context"
	"errors"

	"github.com/thakoorchandan/navswara-go/models"
)

// ErrSizeRequired is returned when a cart mutation is attempted without
// a size variant.
var ErrSizeRequired = errors.New("select product size")

// Cart mutations are optimistic: the local map is updated first and is
// the authoritative view between syncs. The follow-up API call is a
// best-effort acknowledgement: a network failure raises a warning but
// never rolls the local edit back, and responses never write cart state.

// AddToCart increments the quantity for (productID, size) by one. The
// size is mandatory; without it nothing changes and the user is told to
// pick one.
func (s *Shop) AddToCart(ctx context.Context, productID, size string) error {
	if size == "" {
		s.notify.Error("Select Product Size")
		return ErrSizeRequired
	}

	s.mu.Lock()
	s.cart.Add(productID, size)
	s.mu.Unlock()
	s.broadcast()

	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingCart, true)
	defer s.setLoading(&s.loadingCart, false)
	if err := s.api.AddCartItem(ctx, token, productID, size); err != nil {
		s.notify.Error("Could not sync cart")
	}
	return nil
}

// UpdateQuantity sets an absolute quantity for (productID, size). Zero
// or less removes the entry, and the product itself once its last size
// is gone.
func (s *Shop) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	if size == "" {
		s.notify.Error("Select Product Size")
		return ErrSizeRequired
	}

	s.mu.Lock()
	s.cart.Set(productID, size, quantity)
	s.mu.Unlock()
	s.broadcast()

	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingCart, true)
	defer s.setLoading(&s.loadingCart, false)
	if err := s.api.UpdateCartItem(ctx, token, productID, size, quantity); err != nil {
		s.notify.Error("Could not update cart")
	}
	return nil
}

// RefreshCart replaces the local cart with the server's copy. This is
// the explicit resync path; mutation acknowledgements never do this.
func (s *Shop) RefreshCart(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingCart, true)
	defer s.setLoading(&s.loadingCart, false)

	cart, err := s.api.GetCart(ctx, token)
	if err != nil {
		s.notify.Error("Failed to load cart")
		return err
	}
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	s.broadcast()
	return nil
}

// Cart returns a snapshot of the cart map.
func (s *Shop) Cart() models.CartItems {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// CartCount is the total item count across every product and size.
func (s *Shop) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// CartAmount sums quantity × price over every cart entry whose product
// is present in the loaded catalog. Entries for unknown product ids
// contribute nothing; the cart can legitimately race ahead of the
// catalog load.
func (s *Shop) CartAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for pid, sizes := range s.cart {
		product, ok := s.findProduct(pid)
		if !ok {
			continue
		}
		for _, qty := range sizes {
			total += product.Price * float64(qty)
		}
	}
	return total
}

// findProduct looks up a catalog product by id. Callers hold the lock.
func (s *Shop) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
