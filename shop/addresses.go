package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thakoorchandan/navswara-go/models"
)

// ErrIndexOutOfRange is returned for positional mutations aimed past
// the end of the local collection.
var ErrIndexOutOfRange = errors.New("index out of range")

// Address and payment mutations are pessimistic, the opposite policy
// from the cart: the API call goes first and the local collection is
// touched only after a success response. A wrong address costs more
// than a momentarily stale cart count.

// ValidateAddress checks the required fields before anything is sent.
func ValidateAddress(addr models.Address) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"fullName", addr.FullName},
		{"line1", addr.Line1},
		{"city", addr.City},
		{"state", addr.State},
		{"postalCode", addr.PostalCode},
		{"country", addr.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required address fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// validateTypeLabel enforces the type-label uniqueness rule: "Home" and
// "Work" appear at most once, and "Other" entries must carry distinct
// labels. The API enforces this authoritatively; checking here avoids a
// round trip.
func validateTypeLabel(existing []models.Address, label string, skip int) error {
	for i, a := range existing {
		if i == skip {
			continue
		}
		if a.Type == label {
			return fmt.Errorf("an address of type %q already exists", label)
		}
	}
	return nil
}

// FetchAddresses loads the saved address book; a no-op when signed out.
func (s *Shop) FetchAddresses(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingAddresses, true)
	defer s.setLoading(&s.loadingAddresses, false)

	addresses, err := s.api.ListAddresses(ctx, token)
	if err != nil {
		s.notify.Error("Failed to load addresses")
		return err
	}
	s.mu.Lock()
	s.addresses = addresses
	s.mu.Unlock()
	s.broadcast()
	return nil
}

// AddAddress validates, submits, and appends the stored record on
// success. On any failure the local list is left exactly as it was.
func (s *Shop) AddAddress(ctx context.Context, addr models.Address) error {
	if err := ValidateAddress(addr); err != nil {
		s.notify.Error(err.Error())
		return err
	}
	if addr.Type == "" {
		addr.Type = models.AddressTypeHome
	}
	if err := validateTypeLabel(s.Addresses(), addr.Type, -1); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	token := s.Token()
	if token == "" {
		return nil
	}
	saved, err := s.api.AddAddress(ctx, token, addr)
	if err != nil {
		s.notify.Error("Could not add address")
		return err
	}
	s.mu.Lock()
	s.addresses = append(s.addresses, saved)
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Address added")
	return nil
}

// UpdateAddress replaces the address at index. Positional identity is
// fragile across long gaps; refetch before trusting an old index.
func (s *Shop) UpdateAddress(ctx context.Context, index int, addr models.Address) error {
	if err := ValidateAddress(addr); err != nil {
		s.notify.Error(err.Error())
		return err
	}
	existing := s.Addresses()
	if index < 0 || index >= len(existing) {
		return ErrIndexOutOfRange
	}
	if addr.Type == "" {
		addr.Type = existing[index].Type
	}
	if err := validateTypeLabel(existing, addr.Type, index); err != nil {
		s.notify.Error(err.Error())
		return err
	}

	token := s.Token()
	if token == "" {
		return nil
	}
	saved, err := s.api.UpdateAddress(ctx, token, index, addr)
	if err != nil {
		s.notify.Error("Could not update address")
		return err
	}
	s.mu.Lock()
	if index < len(s.addresses) {
		s.addresses[index] = saved
	}
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Address updated")
	return nil
}

// DeleteAddress removes the address at index after the server confirms.
func (s *Shop) DeleteAddress(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.Addresses()) {
		return ErrIndexOutOfRange
	}
	token := s.Token()
	if token == "" {
		return nil
	}
	if err := s.api.DeleteAddress(ctx, token, index); err != nil {
		s.notify.Error("Could not delete address")
		return err
	}
	s.mu.Lock()
	if index < len(s.addresses) {
		s.addresses = append(s.addresses[:index], s.addresses[index+1:]...)
	}
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Address removed")
	return nil
}

// Addresses returns a snapshot of the address book.
func (s *Shop) Addresses() []models.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Address, len(s.addresses))
	copy(out, s.addresses)
	return out
}
