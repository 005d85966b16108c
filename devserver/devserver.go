// Package devserver is an in-memory implementation of the NavSwara
// commerce API, used for local development and as the backend under the
// SDK's integration tests. It covers every endpoint the client calls;
// state lives in maps and is gone when the process exits.
package devserver

import (
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/thakoorchandan/navswara-go/models"
)

type user struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// pendingPayment is a hosted-payment order awaiting verification.
type pendingPayment struct {
	UserID string
	Order  models.Order
}

type Server struct {
	secret []byte

	mu        sync.Mutex
	users     map[string]*user  // by id
	byEmail   map[string]string // email → id
	products  []models.Product
	carts     map[string]models.CartItems
	addresses map[string][]models.Address
	payments  map[string][]models.PaymentMethod
	orders    map[string][]models.Order
	pending   map[string]pendingPayment // gateway ref → order

	wsMu      sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(secret string) *Server {
	return &Server{
		secret:    []byte(secret),
		users:     make(map[string]*user),
		byEmail:   make(map[string]string),
		products:  seedProducts(),
		carts:     make(map[string]models.CartItems),
		addresses: make(map[string][]models.Address),
		payments:  make(map[string][]models.PaymentMethod),
		orders:    make(map[string][]models.Order),
		pending:   make(map[string]pendingPayment),
		wsClients: make(map[*websocket.Conn]bool),
	}
}

// Router wires up every API route the storefront client uses.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes (no middleware)
	r.GET("/api/product/list", s.listProducts)
	r.POST("/api/user/register", s.register)
	r.POST("/api/user/login", s.login)

	// User routes (token-protected)
	userGroup := r.Group("/api", s.validateToken)
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.POST("/get", s.getCart)
			cartGroup.POST("/add", s.addCartItem)
			cartGroup.POST("/update", s.updateCartItem)
		}

		meGroup := userGroup.Group("/user/me")
		{
			meGroup.GET("", s.getProfile)
			meGroup.GET("/addresses", s.listAddresses)
			meGroup.POST("/addresses", s.addAddress)
			meGroup.PUT("/addresses/:index", s.updateAddress)
			meGroup.DELETE("/addresses/:index", s.deleteAddress)
			meGroup.GET("/payments", s.listPayments)
			meGroup.POST("/payments", s.addPayment)
			meGroup.DELETE("/payments/:index", s.deletePayment)
			meGroup.GET("/orders", s.listOrders)
		}

		orderGroup := userGroup.Group("/order")
		{
			orderGroup.POST("/place", s.placeOrder)
			orderGroup.POST("/razorpay", s.createRazorpayOrder)
			orderGroup.POST("/stripe", s.createStripeSession)
			orderGroup.POST("/verifyRazorPay", s.verifyRazorpay)
			orderGroup.POST("/verifyStripe", s.verifyStripe)
		}
	}

	// Order status stream
	r.GET("/ws/orders", s.orderWebSocket)

	return r
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}
