package cookiesession

import (
	"net/http"
	"time"

	"github.com/tavenkim/toa-cookie-session/cookies"
)

// DefaultName is the cookie name used when Config.Name is empty.
const DefaultName = "toa:sess"

// Config holds the static middleware configuration.
//
// Config is a read-only template: New snapshots it, and every request derives
// its own Options copy, so per-request mutations never leak back.
type Config struct {
	// Name is the session cookie name. Defaults to DefaultName.
	Name string

	// Keys are the signing keys. Keys[0] signs; every key verifies, so old
	// keys can stay in the list during rotation. Required when Signed is set.
	Keys [][]byte

	// Signed requests an HMAC companion cookie ("<Name>.sig") and rejects
	// incoming values whose signature does not verify. Default true.
	Signed *bool

	// Overwrite replaces any Set-Cookie header already queued for the same
	// name instead of appending a duplicate. Default true.
	Overwrite *bool

	// HttpOnly marks the cookie inaccessible to client-side script.
	// Default true.
	HttpOnly *bool

	// Secure restricts the cookie to TLS transport. Setting it on a
	// non-TLS request fails the response.
	Secure bool

	// SameSite is the cookie SameSite attribute. SameSiteNoneMode is only
	// emitted to user agents known to handle it.
	SameSite http.SameSite

	// MaxAge bounds the cookie lifetime. Zero means a browser-session cookie.
	MaxAge time.Duration

	// Path defaults to "/".
	Path string

	// Domain is passed through to the cookie verbatim.
	Domain string

	// Partitioned requests a partitioned (CHIPS) cookie.
	Partitioned bool

	// Metrics enables the middleware's internal counters.
	Metrics MetricsConfig
}

// MetricsConfig controls counter collection.
type MetricsConfig struct {
	Enabled bool
}

func defaultBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Bool is a convenience for populating the tri-state boolean Config fields.
func Bool(v bool) *bool { return &v }

// options materializes the effective cookie options from a Config snapshot.
func (c Config) options() cookies.Options {
	return cookies.Options{
		Signed:      defaultBool(c.Signed, true),
		Overwrite:   defaultBool(c.Overwrite, true),
		HttpOnly:    defaultBool(c.HttpOnly, true),
		Secure:      c.Secure,
		SameSite:    c.SameSite,
		MaxAge:      c.MaxAge,
		Path:        c.Path,
		Domain:      c.Domain,
		Partitioned: c.Partitioned,
	}
}

func (c Config) name() string {
	if c.Name == "" {
		return DefaultName
	}
	return c.Name
}
