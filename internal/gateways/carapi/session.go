package carapi

import (
	"net/http"
	"sync"
)

// DefaultAuthCookie is the cookie the admin gateway sets on a successful login.
const DefaultAuthCookie = "Authorization"

// Session holds the cookies of the last successful login against the admin gateway.
// The mutex only guards the cookie slice; the login exchange itself is not serialized,
// so concurrent callers holding an invalid session may each log in.
type Session struct {
	mu      sync.RWMutex
	marker  string
	cookies []*http.Cookie
}

// NewSession returns an unauthenticated session that treats marker as the auth cookie name.
func NewSession(marker string) *Session {
	if marker == "" {
		marker = DefaultAuthCookie
	}
	return &Session{marker: marker}
}

// Valid reports whether the held cookies still carry the auth marker.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cookies {
		if c.Name == s.marker && c.Value != "" {
			return true
		}
	}
	return false
}

// Set replaces the held cookies.
func (s *Session) Set(cookies []*http.Cookie) {
	cp := make([]*http.Cookie, len(cookies))
	copy(cp, cookies)

	s.mu.Lock()
	s.cookies = cp
	s.mu.Unlock()
}

// Cookies returns a copy of the held cookies.
func (s *Session) Cookies() []*http.Cookie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]*http.Cookie, len(s.cookies))
	copy(cp, s.cookies)
	return cp
}

// Reset drops the held cookies.
func (s *Session) Reset() {
	s.mu.Lock()
	s.cookies = nil
	s.mu.Unlock()
}
