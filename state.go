package cookiesession

import (
	"context"
	"net/http"

	"github.com/tavenkim/toa-cookie-session/cookies"
)

type stateContextKey struct{}

// lifecycle is the explicit session lifecycle. The write decision at
// finalization is computed from it, never inferred from mutation flags.
type lifecycle uint8

const (
	lifecycleUnloaded lifecycle = iota
	lifecycleLoaded
	lifecycleCleared
)

// State is the per-request session holder injected by [Middleware.Wrap].
// It is owned by a single request and must not be shared across goroutines
// that outlive the request.
type State struct {
	jar  *cookies.Jar
	name string
	opts cookies.Options

	phase    lifecycle
	sess     *Session
	rejected bool

	// incoming cookie fetch and decode, each performed at most once
	rawFetched bool
	raw        string
	rawOK      bool
	decoded    map[string]any
	decodedOK  bool

	metrics *Metrics
}

// FromContext returns the request's session State. The boolean is false when
// the request did not pass through the session middleware.
func FromContext(ctx context.Context) (*State, bool) {
	st, ok := ctx.Value(stateContextKey{}).(*State)
	return st, ok
}

// FromRequest is shorthand for FromContext(r.Context()). It returns nil when
// the middleware is not installed.
func FromRequest(r *http.Request) *State {
	st, _ := FromContext(r.Context())
	return st
}

// Session returns the request's session, materializing it on first call.
// An absent, unsigned, tampered, or undecodable incoming cookie yields a
// fresh empty session whose IsNew reports true. After SetSession(nil) it
// returns nil.
func (st *State) Session() *Session {
	switch st.phase {
	case lifecycleLoaded:
		return st.sess
	case lifecycleCleared:
		return nil
	}

	values, ok := st.peek()
	if ok {
		st.sess = newSession(values, false)
		st.metrics.Inc(MetricSessionLoaded)
	} else {
		st.sess = newSession(nil, true)
		st.metrics.Inc(MetricSessionNew)
	}
	st.phase = lifecycleLoaded
	return st.sess
}

// SetSession replaces the session. nil destroys it (the finalizer expires the
// client cookie); a map[string]any becomes the new session content. Any other
// value returns ErrInvalidSessionValue and poisons the request: no cookie is
// emitted and the middleware responds with a server error when the handler
// has not written.
func (st *State) SetSession(v any) error {
	switch values := v.(type) {
	case nil:
		st.phase = lifecycleCleared
		st.sess = nil
		return nil
	case map[string]any:
		_, hadValid := st.peek()
		st.sess = newSession(values, !hadValid)
		st.phase = lifecycleLoaded
		return nil
	default:
		st.rejected = true
		st.metrics.Inc(MetricInvalidSet)
		return ErrInvalidSessionValue
	}
}

// Clear is shorthand for SetSession(nil).
func (st *State) Clear() {
	_ = st.SetSession(nil)
}

// Options returns the request's cookie options. The returned pointer is
// request-local: mutating it (e.g. MaxAge) affects this response only and
// never the middleware's base configuration.
func (st *State) Options() *cookies.Options {
	return &st.opts
}

// peek fetches and decodes the incoming cookie, memoized, without touching
// the lifecycle. Used both by lazy loading and by SetSession's IsNew
// derivation.
func (st *State) peek() (map[string]any, bool) {
	if !st.rawFetched {
		st.rawFetched = true
		st.raw, st.rawOK = st.jar.Get(st.name, st.opts)
		if st.rawOK {
			st.decoded, st.decodedOK = decodeSession(st.raw)
			if !st.decodedOK {
				st.metrics.Inc(MetricDecodeFailure)
			}
		}
	}
	return st.decoded, st.decodedOK
}
