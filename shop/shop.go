// Package shop implements the storefront's client state container: the
// single owner of session and domain state, and the only component that
// talks to the commerce API for domain data. All collections except the
// token are synchronized copies of server state; the container is not
// the system of record.
package shop

import (
	"context"
	"sync"

	"github.com/thakoorchandan/navswara-go/client"
	"github.com/thakoorchandan/navswara-go/models"
	"github.com/thakoorchandan/navswara-go/session"
)

// Options configure a Shop. Client is required; everything else has a
// sensible default.
type Options struct {
	Client      *client.Client
	Sessions    session.Store
	Notifier    Notifier
	Currency    string
	DeliveryFee float64
}

type Shop struct {
	api      *client.Client
	sessions session.Store
	notify   Notifier

	currency    string
	deliveryFee float64

	mu        sync.Mutex
	token     string
	profile   *models.Profile
	products  []models.Product
	cart      models.CartItems
	addresses []models.Address
	payments  []models.PaymentMethod
	orders    []models.Order

	loadingProducts  bool
	loadingCart      bool
	loadingAddresses bool
	loadingPayments  bool
	loadingOrders    bool

	onChange []func()
}

func New(opts Options) *Shop {
	if opts.Sessions == nil {
		opts.Sessions = &session.MemStore{}
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{}
	}
	if opts.Currency == "" {
		opts.Currency = "₹"
	}
	if opts.DeliveryFee == 0 {
		opts.DeliveryFee = 10
	}
	return &Shop{
		api:         opts.Client,
		sessions:    opts.Sessions,
		notify:      opts.Notifier,
		currency:    opts.Currency,
		deliveryFee: opts.DeliveryFee,
		cart:        models.CartItems{},
	}
}

// OnChange registers a callback invoked after every observable state
// transition, the re-render hook for whatever is presenting this state.
// Callbacks run outside the container's lock and may call back into it.
func (s *Shop) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *Shop) broadcast() {
	s.mu.Lock()
	callbacks := make([]func(), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// Init loads the persisted token and the product catalog, then, if a
// session exists, refreshes every user-scoped collection in parallel.
// Call once at startup.
func (s *Shop) Init(ctx context.Context) error {
	token, err := s.sessions.Load()
	if err != nil {
		s.notify.Error("Failed to read saved session")
	} else if token != "" {
		s.mu.Lock()
		s.token = token
		s.mu.Unlock()
	}

	if err := s.FetchProducts(ctx); err != nil {
		return err
	}
	if s.Token() != "" {
		s.refreshUserData(ctx)
	}
	return nil
}

// SetToken installs a new session token. A non-empty token is persisted
// and triggers an independent refresh of cart, addresses, payments,
// orders and profile; one failing does not block the others. An empty
// token is the sign-out path: the persisted token is cleared and every
// user-scoped collection is reset in a single transition.
func (s *Shop) SetToken(ctx context.Context, token string) {
	if token == "" {
		if err := s.sessions.Clear(); err != nil {
			s.notify.Error("Failed to clear saved session")
		}
		s.mu.Lock()
		s.token = ""
		s.cart = models.CartItems{}
		s.addresses = nil
		s.payments = nil
		s.orders = nil
		s.profile = nil
		s.mu.Unlock()
		s.broadcast()
		return
	}

	if err := s.sessions.Save(token); err != nil {
		s.notify.Error("Failed to persist session")
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.broadcast()

	s.refreshUserData(ctx)
}

// refreshUserData fetches the five user-scoped collections in parallel.
// Each fetch reports its own failure and owns a disjoint slice of
// state, so there is no ordering between them.
func (s *Shop) refreshUserData(ctx context.Context) {
	var wg sync.WaitGroup
	for _, fetch := range []func(context.Context) error{
		s.RefreshCart,
		s.FetchAddresses,
		s.FetchPayments,
		s.FetchOrders,
		s.FetchProfile,
	} {
		wg.Add(1)
		go func(fn func(context.Context) error) {
			defer wg.Done()
			fn(ctx) //nolint:errcheck // each fetch notifies on its own failure
		}(fetch)
	}
	wg.Wait()
}

// Login exchanges credentials for a token and installs it.
func (s *Shop) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notify.Error(err.Error())
		return err
	}
	s.SetToken(ctx, token)
	return nil
}

// Register creates an account and signs in.
func (s *Shop) Register(ctx context.Context, name, email, password string) error {
	token, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		s.notify.Error(err.Error())
		return err
	}
	s.SetToken(ctx, token)
	return nil
}

// Logout signs out, clearing session and user-scoped state.
func (s *Shop) Logout(ctx context.Context) {
	s.SetToken(ctx, "")
}

// FetchProducts loads the catalog. No auth required; on failure the
// previous catalog stays in place.
func (s *Shop) FetchProducts(ctx context.Context) error {
	s.setLoading(&s.loadingProducts, true)
	defer s.setLoading(&s.loadingProducts, false)

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.notify.Error("Failed to fetch products")
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.broadcast()
	return nil
}

// FetchProfile loads the signed-in user's profile; a no-op when signed
// out.
func (s *Shop) FetchProfile(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}
	profile, err := s.api.GetProfile(ctx, token)
	if err != nil {
		s.notify.Error("Failed to load profile")
		return err
	}
	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	s.broadcast()
	return nil
}

func (s *Shop) setLoading(flag *bool, v bool) {
	s.mu.Lock()
	*flag = v
	s.mu.Unlock()
	s.broadcast()
}

// Loading reports whether any collection fetch is in flight.
func (s *Shop) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingProducts || s.loadingCart || s.loadingAddresses ||
		s.loadingPayments || s.loadingOrders
}

// Token returns the current session token; empty means signed out.
func (s *Shop) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Products returns the loaded catalog.
func (s *Shop) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Profile returns the loaded profile, or nil when not signed in or not
// yet fetched.
func (s *Shop) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Currency is the display currency symbol.
func (s *Shop) Currency() string { return s.currency }

// DeliveryFee is the flat fee added to the cart amount at checkout.
func (s *Shop) DeliveryFee() float64 { return s.deliveryFee }
