package shop_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/thakoorchandan/navswara-go/client"
	"github.com/thakoorchandan/navswara-go/devserver"
	"github.com/thakoorchandan/navswara-go/models"
	"github.com/thakoorchandan/navswara-go/session"
	"github.com/thakoorchandan/navswara-go/shop"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recorder captures notifications for assertions.
type recorder struct {
	mu        sync.Mutex
	errors    []string
	successes []string
}

func (r *recorder) Error(msg string) {
	r.mu.Lock()
	r.errors = append(r.errors, msg)
	r.mu.Unlock()
}

func (r *recorder) Success(msg string) {
	r.mu.Lock()
	r.successes = append(r.successes, msg)
	r.mu.Unlock()
}

func (r *recorder) lastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.errors) == 0 {
		return ""
	}
	return r.errors[len(r.errors)-1]
}

// newTestShop spins up a dev API and a Shop pointed at it.
func newTestShop(t *testing.T) (*shop.Shop, *devserver.Server, *httptest.Server, *recorder) {
	t.Helper()
	api := devserver.New("test-secret")
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	notes := &recorder{}
	s := shop.New(shop.Options{
		Client:   client.New(srv.URL),
		Sessions: &session.MemStore{},
		Notifier: notes,
	})
	return s, api, srv, notes
}

func TestInitLoadsCatalog(t *testing.T) {
	s, _, _, _ := newTestShop(t)

	require.NoError(t, s.Init(context.Background()))
	require.NotEmpty(t, s.Products())
	require.Empty(t, s.Token())
	require.Zero(t, s.CartCount())
	require.False(t, s.Loading())
}

func TestRegisterInstallsSession(t *testing.T) {
	s, _, _, _ := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))
	require.NotEmpty(t, s.Token())
	require.NotNil(t, s.Profile())
	require.Equal(t, "asha@example.com", s.Profile().Email)
}

func TestLoginBadCredentials(t *testing.T) {
	s, _, _, notes := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))
	s.Logout(ctx)

	err := s.Login(ctx, "asha@example.com", "wrong")
	require.Error(t, err)
	require.Empty(t, s.Token())
	require.Contains(t, notes.lastError(), "Invalid email or password")
}

func TestAddToCartRequiresSize(t *testing.T) {
	s, _, _, notes := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	err := s.AddToCart(ctx, "prod-saree-banarasi", "")
	require.ErrorIs(t, err, shop.ErrSizeRequired)
	require.Zero(t, s.CartCount(), "no state change on validation failure")
	require.Equal(t, "Select Product Size", notes.lastError())
}

func TestAddToCartOptimisticDespiteNetworkFailure(t *testing.T) {
	s, _, srv, notes := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))

	// kill the API; the local increment must survive the failed sync
	srv.Close()
	err := s.AddToCart(ctx, "prod-saree-banarasi", "Free Size")
	require.NoError(t, err, "sync failure is a warning, not an error")
	require.Equal(t, 1, s.CartCount())
	require.Equal(t, "Could not sync cart", notes.lastError())
}

func TestUpdateQuantityPrunesEntries(t *testing.T) {
	s, _, _, _ := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	require.NoError(t, s.AddToCart(ctx, "prod-kurta-cotton", "M"))
	require.NoError(t, s.AddToCart(ctx, "prod-kurta-cotton", "L"))
	require.NoError(t, s.UpdateQuantity(ctx, "prod-kurta-cotton", "M", 0))

	cart := s.Cart()
	_, exists := cart["prod-kurta-cotton"]["M"]
	require.False(t, exists)
	require.Equal(t, 1, s.CartCount())

	// removing the last size drops the product entirely
	require.NoError(t, s.UpdateQuantity(ctx, "prod-kurta-cotton", "L", -2))
	_, exists = s.Cart()["prod-kurta-cotton"]
	require.False(t, exists)
	require.Zero(t, s.CartCount())
}

func TestCartAmountIgnoresUnknownProducts(t *testing.T) {
	s, api, _, _ := newTestShop(t)
	ctx := context.Background()

	api.SetProducts([]models.Product{
		{ID: "Y", Name: "Known", Price: 100, Sizes: []string{"M"}},
	})
	require.NoError(t, s.Init(ctx))

	// not signed in, so both edits stay local
	require.NoError(t, s.AddToCart(ctx, "Y", "M"))
	require.NoError(t, s.AddToCart(ctx, "X", "M")) // not in the catalog

	require.Equal(t, 2, s.CartCount(), "count covers every entry")
	require.Equal(t, 100.0, s.CartAmount(), "unknown product ids contribute nothing")
}

func TestSignOutClearsEverythingInOneTransition(t *testing.T) {
	s, _, _, _ := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))
	require.NoError(t, s.AddToCart(ctx, "prod-saree-banarasi", "Free Size"))
	require.NoError(t, s.AddAddress(ctx, models.Address{
		FullName: "Asha", Line1: "12 MG Road", City: "Pune",
		State: "MH", PostalCode: "411001", Country: "India",
	}))

	transitions := 0
	s.OnChange(func() {
		transitions++
		require.Empty(t, s.Token())
		require.Zero(t, s.CartCount())
		require.Empty(t, s.Addresses())
		require.Empty(t, s.Payments())
		require.Empty(t, s.Orders())
		require.Nil(t, s.Profile())
	})
	s.Logout(ctx)
	require.Equal(t, 1, transitions, "sign-out is one observable transition")
}

func TestFailedAddAddressLeavesListUnchanged(t *testing.T) {
	s, _, srv, _ := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))
	require.NoError(t, s.AddAddress(ctx, models.Address{
		FullName: "Asha", Line1: "12 MG Road", City: "Pune",
		State: "MH", PostalCode: "411001", Country: "India",
		Type: models.AddressTypeHome,
	}))
	before := s.Addresses()

	// network failure on a pessimistic mutation: nothing applied locally
	srv.Close()
	err := s.AddAddress(ctx, models.Address{
		FullName: "Asha", Line1: "7 FC Road", City: "Pune",
		State: "MH", PostalCode: "411004", Country: "India",
		Type: models.AddressTypeWork,
	})
	require.Error(t, err)
	require.Equal(t, before, s.Addresses())
}

func TestAddAddressValidation(t *testing.T) {
	s, _, _, notes := newTestShop(t)
	ctx := context.Background()
	require.NoError(t, s.Register(ctx, "Asha", "asha@example.com", "hunter2"))

	t.Run("missing required fields", func(t *testing.T) {
		err := s.AddAddress(ctx, models.Address{FullName: "Asha"})
		require.Error(t, err)
		require.Contains(t, notes.lastError(), "missing required address fields")
		require.Empty(t, s.Addresses())
	})

	t.Run("duplicate type label", func(t *testing.T) {
		addr := models.Address{
			FullName: "Asha", Line1: "12 MG Road", City: "Pune",
			State: "MH", PostalCode: "411001", Country: "India",
			Type: models.AddressTypeHome,
		}
		require.NoError(t, s.AddAddress(ctx, addr))
		addr.Line1 = "7 FC Road"
		err := s.AddAddress(ctx, addr)
		require.Error(t, err)
		require.Len(t, s.Addresses(), 1)
	})

	t.Run("distinct Other labels may coexist", func(t *testing.T) {
		base := models.Address{
			FullName: "Asha", Line1: "1 Office Park", City: "Pune",
			State: "MH", PostalCode: "411014", Country: "India",
		}
		base.Type = "Office"
		require.NoError(t, s.AddAddress(ctx, base))
		base.Type = "Gym"
		require.NoError(t, s.AddAddress(ctx, base))
		require.Len(t, s.Addresses(), 3)
	})
}

func TestLoadingFlagDuringFetch(t *testing.T) {
	s, _, _, _ := newTestShop(t)

	var sawLoading bool
	s.OnChange(func() {
		if s.Loading() {
			sawLoading = true
		}
	})
	require.NoError(t, s.FetchProducts(context.Background()))
	require.True(t, sawLoading, "an in-flight fetch keeps the container loading")
	require.False(t, s.Loading())
}

func TestUserScopedFetchesSkipWithoutToken(t *testing.T) {
	s, _, srv, _ := newTestShop(t)
	ctx := context.Background()

	// API down: these must still be no-ops, not failed requests
	srv.Close()
	require.NoError(t, s.RefreshCart(ctx))
	require.NoError(t, s.FetchAddresses(ctx))
	require.NoError(t, s.FetchPayments(ctx))
	require.NoError(t, s.FetchOrders(ctx))
	require.NoError(t, s.FetchProfile(ctx))
}
