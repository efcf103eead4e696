// Package cookiesession provides cookie-backed session middleware for net/http.
//
// The session lives entirely inside a single cookie: base64-encoded JSON,
// optionally signed with an HMAC companion cookie. A per-request [State] is
// injected into the request context by [Middleware.Wrap]; handlers load the
// session lazily through [State.Session], replace or clear it through
// [State.SetSession], and tune cookie attributes for one response through
// [State.Options].
//
// No cookie is written unless the handler touched the session. A touched,
// non-empty session is re-serialized on every response; clearing a session
// expires the cookie on the client.
//
// # Architecture boundaries
//
// cookiesession is the public surface. It exposes [Middleware], [Config],
// [State], [Session], and value types (MetricsSnapshot). Cookie transport and
// signing live in the cookies sub-package; user-agent compatibility sniffing
// lives under internal/ and is never exported.
//
// # What this package must NOT do
//
//   - Persist session state anywhere other than the cookie value.
//   - Encrypt cookie payloads (signing only; the payload is client-readable).
//   - Perform I/O: every operation is an in-memory header mutation.
package cookiesession
