// Package cookies reads and writes HTTP cookies with optional HMAC signing.
//
// A [Jar] binds a ResponseWriter/Request pair. [Jar.Get] verifies the
// "<name>.sig" companion cookie when signing is requested and treats a
// missing or non-verifying signature as an absent cookie. [Jar.Set] writes
// the value, its signature, and honors Overwrite semantics; setting an empty
// value expires both the cookie and its companion.
//
// Signing uses [Keygrip]: HMAC-SHA256, first key signs, all keys verify, so
// keys can be rotated without invalidating live cookies. A value that
// verifies against a non-primary key is transparently re-signed with the
// primary one.
//
// # What this package must NOT do
//
//   - Encrypt values (payloads stay client-readable).
//   - Interpret the cookie value (that is the caller's codec).
//   - Buffer responses; headers must still be unsent when Set is called.
package cookies
