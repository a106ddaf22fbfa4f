package platform

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// JarStore is an in-process ports.CredentialStore backed by a cookie jar.
// Cookies live as long as the process.
type JarStore struct {
	jar http.CookieJar
}

// NewJarStore creates an empty in-memory credential store.
func NewJarStore() *JarStore {
	// cookiejar.New only fails on a broken PublicSuffixList, and nil is valid.
	jar, _ := cookiejar.New(nil)
	return &JarStore{jar: jar}
}

// Cookies returns the cookies to send to u.
func (s *JarStore) Cookies(_ context.Context, u *url.URL) ([]*http.Cookie, error) {
	return s.jar.Cookies(u), nil
}

// SetCookies stores cookies received from u.
func (s *JarStore) SetCookies(_ context.Context, u *url.URL, cookies []*http.Cookie) error {
	s.jar.SetCookies(u, cookies)
	return nil
}
