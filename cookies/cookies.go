package cookies

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Browsers reject cookies whose serialized name=value exceeds 4093 bytes.
const maxPairLength = 4093

var (
	// ErrInsecureContext is returned when a Secure cookie is set on a
	// request that did not arrive over TLS.
	ErrInsecureContext = errors.New("secure cookie on insecure connection")
	// ErrValueTooLong is returned when name plus value exceeds the browser
	// cookie size limit.
	ErrValueTooLong = errors.New("cookie value too long")
	// ErrNoKeys is returned when signing is requested without a Keygrip.
	ErrNoKeys = errors.New("signing requested without keys")
)

// Options controls how a cookie is read and written.
type Options struct {
	Signed      bool
	Overwrite   bool
	HttpOnly    bool
	Secure      bool
	SameSite    http.SameSite
	MaxAge      time.Duration
	Path        string
	Domain      string
	Partitioned bool

	// OmitSameSite drops the SameSite attribute from the serialized cookie.
	// Used for user agents that mishandle SameSite=None.
	OmitSameSite bool
}

func (o Options) path() string {
	if o.Path == "" {
		return "/"
	}
	return o.Path
}

// Jar reads cookies from a request and queues cookies on a response.
// All operations are in-memory header mutations against already-parsed state.
//
// Serialization is done by hand rather than through http.Cookie: legacy
// cookie names such as "toa:sess" contain separator characters that net/http
// rejects, while every deployed browser accepts them.
type Jar struct {
	w  http.ResponseWriter
	r  *http.Request
	kg *Keygrip
}

// New binds a Jar to a response/request pair. kg may be nil when no signed
// operations will be performed.
func New(w http.ResponseWriter, r *http.Request, kg *Keygrip) *Jar {
	return &Jar{w: w, r: r, kg: kg}
}

// Get returns the cookie value for name. With opts.Signed it also requires a
// verifying "<name>.sig" companion; a missing or tampered signature makes the
// cookie absent. A signature produced by a rotated-out key is accepted and
// transparently re-issued under the primary key.
func (j *Jar) Get(name string, opts Options) (string, bool) {
	value, ok := j.read(name)
	if !ok || value == "" {
		return "", false
	}
	if !opts.Signed {
		return value, true
	}
	if j.kg == nil {
		return "", false
	}

	sig, ok := j.read(name + ".sig")
	if !ok {
		return "", false
	}
	data := name + "=" + value
	index := j.kg.Index(data, sig)
	if index < 0 {
		return "", false
	}
	if index > 0 {
		// Signed by an old key: refresh the signature under the primary key.
		j.queue(name+".sig", j.kg.Sign(data), opts)
	}
	return value, true
}

// Set queues a Set-Cookie header for name. An empty value expires the cookie.
// With opts.Signed the "<name>.sig" companion is written (or expired) in the
// same call.
func (j *Jar) Set(name, value string, opts Options) error {
	if opts.Secure && j.r.TLS == nil {
		return ErrInsecureContext
	}
	if len(name)+len(value) > maxPairLength {
		return ErrValueTooLong
	}
	if opts.Signed && j.kg == nil {
		return ErrNoKeys
	}

	j.queue(name, value, opts)
	if opts.Signed {
		sig := ""
		if value != "" {
			sig = j.kg.Sign(name + "=" + value)
		}
		j.queue(name+".sig", sig, opts)
	}
	return nil
}

// read scans the request Cookie headers for name.
func (j *Jar) read(name string) (string, bool) {
	for _, line := range j.r.Header.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
			if !ok || k != name {
				continue
			}
			if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
				v = v[1 : len(v)-1]
			}
			return v, true
		}
	}
	return "", false
}

// queue serializes the cookie and appends the Set-Cookie header, honoring
// Overwrite.
func (j *Jar) queue(name, value string, opts Options) {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	b.WriteString("; Path=")
	b.WriteString(opts.path())
	if opts.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(opts.Domain)
	}

	if value == "" {
		// Expire on the client: epoch Expires plus Max-Age=0.
		b.WriteString("; Expires=")
		b.WriteString(time.Unix(1, 0).UTC().Format(http.TimeFormat))
		b.WriteString("; Max-Age=0")
	} else if opts.MaxAge > 0 {
		b.WriteString("; Expires=")
		b.WriteString(time.Now().Add(opts.MaxAge).UTC().Format(http.TimeFormat))
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(int(opts.MaxAge / time.Second)))
	}

	if opts.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	if !opts.OmitSameSite {
		switch opts.SameSite {
		case http.SameSiteLaxMode:
			b.WriteString("; SameSite=Lax")
		case http.SameSiteStrictMode:
			b.WriteString("; SameSite=Strict")
		case http.SameSiteNoneMode:
			b.WriteString("; SameSite=None")
		}
	}
	if opts.Partitioned {
		b.WriteString("; Partitioned")
	}

	header := j.w.Header()
	if opts.Overwrite {
		kept := header["Set-Cookie"][:0:0]
		for _, line := range header["Set-Cookie"] {
			if !strings.HasPrefix(line, name+"=") {
				kept = append(kept, line)
			}
		}
		header["Set-Cookie"] = kept
	}
	header.Add("Set-Cookie", b.String())
}
