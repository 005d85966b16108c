package shop

import (
	"context"

	"github.com/thakoorchandan/navswara-go/models"
)

// FetchPayments loads the saved payment methods; a no-op when signed
// out.
func (s *Shop) FetchPayments(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	s.setLoading(&s.loadingPayments, true)
	defer s.setLoading(&s.loadingPayments, false)

	payments, err := s.api.ListPaymentMethods(ctx, token)
	if err != nil {
		s.notify.Error("Failed to load payment methods")
		return err
	}
	s.mu.Lock()
	s.payments = payments
	s.mu.Unlock()
	s.broadcast()
	return nil
}

// AddPaymentMethod submits a method and appends it locally only after
// the server accepts it.
func (s *Shop) AddPaymentMethod(ctx context.Context, method models.PaymentMethod) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	saved, err := s.api.AddPaymentMethod(ctx, token, method)
	if err != nil {
		s.notify.Error("Could not add payment method")
		return err
	}
	s.mu.Lock()
	s.payments = append(s.payments, saved)
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Payment method added")
	return nil
}

// DeletePaymentMethod removes the method at index after the server
// confirms.
func (s *Shop) DeletePaymentMethod(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.Payments()) {
		return ErrIndexOutOfRange
	}
	token := s.Token()
	if token == "" {
		return nil
	}
	if err := s.api.DeletePaymentMethod(ctx, token, index); err != nil {
		s.notify.Error("Could not delete payment method")
		return err
	}
	s.mu.Lock()
	if index < len(s.payments) {
		s.payments = append(s.payments[:index], s.payments[index+1:]...)
	}
	s.mu.Unlock()
	s.broadcast()
	s.notify.Success("Payment method removed")
	return nil
}

// Payments returns a snapshot of the saved payment methods.
func (s *Shop) Payments() []models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PaymentMethod, len(s.payments))
	copy(out, s.payments)
	return out
}
