package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/user/register
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	if _, exists := s.byEmail[email]; exists {
		s.mu.Unlock()
		fail(c, http.StatusBadRequest, "User already exists")
		return
	}
	u := &user{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     email,
		Password:  req.Password,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": s.issueJWT(u.ID, email)})
}

// POST /api/user/login
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	id, ok := s.byEmail[email]
	var u *user
	if ok {
		u = s.users[id]
	}
	s.mu.Unlock()

	if u == nil || u.Password != req.Password {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": s.issueJWT(u.ID, email)})
}

// issueJWT generates a session token for a user
func (s *Server) issueJWT(userID, email string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return ""
	}
	return signed
}

// validateToken guards the user-scoped routes: the "token" header must
// carry a valid HMAC-signed JWT, whose user id is stored on the context
// for the handlers.
func (s *Server) validateToken(c *gin.Context) {
	tokenString := c.GetHeader("token")
	if tokenString == "" {
		fail(c, http.StatusUnauthorized, "Not authorized, login again")
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		fail(c, http.StatusUnauthorized, "Invalid token claims")
		c.Abort()
		return
	}
	userID, _ := claims["user_id"].(string)

	s.mu.Lock()
	_, known := s.users[userID]
	s.mu.Unlock()
	if !known {
		fail(c, http.StatusUnauthorized, "Unknown user")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// UserIDByEmail resolves a registered email to its user id; dev tooling
// and tests use it to drive per-user helpers like AdvanceOrder.
func (s *Server) UserIDByEmail(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	return id, ok
}

func currentUser(c *gin.Context) string {
	id, _ := c.Get("user_id")
	s, _ := id.(string)
	return s
}
