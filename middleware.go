package cookiesession

import (
	"context"
	"net/http"

	"github.com/tavenkim/toa-cookie-session/cookies"
	"github.com/tavenkim/toa-cookie-session/internal/agent"
)

// Middleware carries the validated configuration shared by every request.
// Construct it once with [New] and install it with [Wrap].
type Middleware struct {
	name    string
	keygrip *cookies.Keygrip
	base    cookies.Options
	metrics *Metrics
}

// New validates cfg and builds the middleware. Signed mode (the default)
// requires at least one key in cfg.Keys.
func New(cfg Config) (*Middleware, error) {
	base := cfg.options()

	var kg *cookies.Keygrip
	if base.Signed {
		kg = cookies.NewKeygrip(cfg.Keys)
		if kg == nil {
			return nil, ErrKeysRequired
		}
	}

	return &Middleware{
		name:    cfg.name(),
		keygrip: kg,
		base:    base,
		metrics: NewMetrics(cfg.Metrics),
	}, nil
}

// MetricsSnapshot returns a point-in-time copy of the middleware counters.
func (m *Middleware) MetricsSnapshot() MetricsSnapshot {
	return m.metrics.Snapshot()
}

// Wrap installs the session middleware around next. Each request gets its own
// [State] in the request context; the session cookie is committed exactly
// once, before the first response byte, whether the handler writes, returns
// without writing, or panics.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := &State{
			jar:     cookies.New(w, r, m.keygrip),
			name:    m.name,
			opts:    m.base,
			metrics: m.metrics,
		}

		sw := &sessionWriter{ResponseWriter: w, state: st, userAgent: r.UserAgent()}
		ctx := context.WithValue(r.Context(), stateContextKey{}, st)

		// The deferred commit covers handlers that never write and handlers
		// that panic; the write decision is still applied to the headers
		// before the panic propagates.
		defer sw.commit()
		next.ServeHTTP(sw, r.WithContext(ctx))
	})
}

// sessionWriter intercepts the first write so the cookie decision lands in
// the headers before they are flushed.
type sessionWriter struct {
	http.ResponseWriter
	state     *State
	userAgent string
	committed bool
	wrote     bool
	failed    bool
}

func (sw *sessionWriter) WriteHeader(code int) {
	sw.commit()
	if sw.failed {
		return
	}
	sw.wrote = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(p []byte) (int, error) {
	sw.commit()
	if sw.failed {
		// The commit already replaced the response with a server error.
		return len(p), nil
	}
	sw.wrote = true
	return sw.ResponseWriter.Write(p)
}

func (sw *sessionWriter) Flush() {
	sw.commit()
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (sw *sessionWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// commit runs the finalization exactly once. On a failed save it emits a
// server error when the response has not started; otherwise the response is
// left as the handler wrote it, just without a session cookie.
func (sw *sessionWriter) commit() {
	if sw.committed {
		return
	}
	sw.committed = true

	if err := sw.state.save(sw.userAgent); err != nil && !sw.wrote {
		sw.failed = true
		http.Error(sw.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// save applies the tri-state write decision.
func (st *State) save(userAgent string) error {
	if st.rejected {
		return ErrInvalidSessionValue
	}

	switch st.phase {
	case lifecycleUnloaded:
		// Never accessed: no Set-Cookie at all.
		st.metrics.Inc(MetricWriteSkipped)
		return nil

	case lifecycleCleared:
		if err := st.jar.Set(st.name, "", st.writeOptions(userAgent)); err != nil {
			st.metrics.Inc(MetricWriteError)
			return err
		}
		st.metrics.Inc(MetricCookieCleared)
		return nil
	}

	if st.sess.Len() == 0 {
		// Empty sessions are never written. An existing client cookie
		// survives until explicitly cleared.
		st.metrics.Inc(MetricWriteSkipped)
		return nil
	}

	value, err := encodeSession(st.sess.values)
	if err != nil {
		st.metrics.Inc(MetricWriteError)
		return err
	}
	if err := st.jar.Set(st.name, value, st.writeOptions(userAgent)); err != nil {
		st.metrics.Inc(MetricWriteError)
		return err
	}
	st.metrics.Inc(MetricCookieSet)
	return nil
}

// writeOptions derives the final cookie options for this response, dropping
// SameSite=None for user agents that would misread it.
func (st *State) writeOptions(userAgent string) cookies.Options {
	opts := st.opts
	if opts.SameSite == http.SameSiteNoneMode && !agent.SameSiteNoneCompatible(userAgent) {
		opts.OmitSameSite = true
	}
	return opts
}
