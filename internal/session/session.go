package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "session"

	defaultTTL = 24 * time.Hour
)

type contextKey string

const contextSessionKey contextKey = "session"

// Data is the identity stored in the session after login.
type Data struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	LoginID  string `json:"userid"`
}

type claims struct {
	Data
	jwt.RegisteredClaims
}

// Manager issues and verifies signed session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("session secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Save writes a session cookie carrying data.
func (m *Manager) Save(w http.ResponseWriter, data Data) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(data.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load returns the session carried by the request cookie, if valid.
func (m *Manager) Load(r *http.Request) (Data, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return Data{}, false
	}
	data, err := m.parse(cookie.Value)
	if err != nil {
		return Data{}, false
	}
	return data, true
}

// Middleware loads the session, if any, into the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data, ok := m.Load(r); ok {
			r = r.WithContext(NewContext(r.Context(), data))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Manager) parse(tokenString string) (Data, error) {
	parsed := claims{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return Data{}, err
	}
	if !token.Valid {
		return Data{}, errors.New("invalid token")
	}
	if parsed.UserID < 1 || strings.TrimSpace(parsed.UserName) == "" {
		return Data{}, errors.New("incomplete session")
	}
	return parsed.Data, nil
}

// NewContext returns ctx carrying data.
func NewContext(ctx context.Context, data Data) context.Context {
	return context.WithValue(ctx, contextSessionKey, data)
}

// FromContext returns the session stored by Middleware.
func FromContext(ctx context.Context) (Data, bool) {
	data, ok := ctx.Value(contextSessionKey).(Data)
	return data, ok
}
