package mw

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authCookie = "Authorization"
	// CtxRoleKey - gin context key holding the caller's roles
	CtxRoleKey = "roles"
)

var (
	errNoToken      = errors.New("missing token")
	errInvalidToken = errors.New("invalid token")
	errNoSecret     = errors.New("secret key is not configured")
)

// RoleClaims - token payload; either role or roles is expected
type RoleClaims struct {
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func (c RoleClaims) all() []string {
	out := make([]string, 0, len(c.Roles)+1)
	if c.Role != "" {
		out = append(out, c.Role)
	}
	return append(out, c.Roles...)
}

// RoleGate checks HS256 tokens signed with a shared secret.
type RoleGate struct {
	secret []byte
	bypass bool
}

// NewRoleGate returns a gate. Without a secret it rejects every request.
func NewRoleGate(secret string) *RoleGate {
	return &RoleGate{secret: []byte(secret)}
}

// NewLocalRoleGate behaves like NewRoleGate but lets requests through
// unchecked when the secret is empty. Only for local and test setups.
func NewLocalRoleGate(secret string) *RoleGate {
	return &RoleGate{secret: []byte(secret), bypass: secret == ""}
}

// Enabled reports whether role checks are enforced.
func (g *RoleGate) Enabled() bool {
	return g != nil && !g.bypass
}

// RequireRoles aborts with 401 when the token is missing or invalid and with 403
// when none of its roles is in allowed.
func (g *RoleGate) RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Enabled() {
			c.Next()
			return
		}

		claims, err := g.parse(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: " + err.Error()})
			return
		}

		roles := claims.all()
		for _, r := range roles {
			if slices.Contains(allowed, r) {
				c.Set(CtxRoleKey, roles)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: insufficient role"})
	}
}

func (g *RoleGate) parse(c *gin.Context) (*RoleClaims, error) {
	if len(g.secret) == 0 {
		return nil, errNoSecret
	}

	raw := bearer(c.GetHeader("Authorization"))
	if raw == "" {
		if v, err := c.Cookie(authCookie); err == nil {
			raw = strings.TrimSpace(v)
		}
	}
	if raw == "" {
		return nil, errNoToken
	}

	claims := &RoleClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

func bearer(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
