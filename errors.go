package cookiesession

import "errors"

var (
	// ErrInvalidSessionValue is returned by State.SetSession when the value is
	// neither nil nor a map[string]any.
	ErrInvalidSessionValue = errors.New("invalid session value")
	// ErrKeysRequired is returned by New when signed mode is enabled without
	// signing keys.
	ErrKeysRequired = errors.New("signed sessions require keys")
)
