// Package agent classifies user agents that mishandle SameSite=None.
//
// A batch of clients released around 2017-2019 either reject cookies carrying
// SameSite=None outright or silently treat them as SameSite=Strict. For those
// clients the attribute must be omitted entirely.
package agent

import "strings"

// SameSiteNoneCompatible reports whether the user agent handles the
// SameSite=None cookie attribute correctly. The known offenders:
//
//   - iOS 12 (all browsers, WebKit-mandated)
//   - macOS 10.14 Safari and embedded WebKit views
//   - Chrome and Chromium 51 through 66
//   - UC Browser before 12.13.2
func SameSiteNoneCompatible(userAgent string) bool {
	if userAgent == "" {
		return true
	}

	// UC Browser embeds a Chrome token, so it is classified first.
	if i := strings.Index(userAgent, "UCBrowser/"); i >= 0 {
		major, minor, build := parseVersion(userAgent[i+len("UCBrowser/"):])
		if major != 12 {
			return major > 12
		}
		if minor != 13 {
			return minor > 13
		}
		return build >= 2
	}

	if isIOS12(userAgent) {
		return false
	}
	if isMacOS1014WebKit(userAgent) {
		return false
	}
	if isChromium51Through66(userAgent) {
		return false
	}
	return true
}

func isIOS12(ua string) bool {
	return strings.Contains(ua, "CPU iPhone OS 12_") ||
		strings.Contains(ua, "iPad; CPU OS 12_")
}

func isMacOS1014WebKit(ua string) bool {
	if !strings.Contains(ua, "Macintosh; Intel Mac OS X 10_14") {
		return false
	}
	// Chrome on the same macOS release is fine.
	if strings.Contains(ua, "Chrome/") || strings.Contains(ua, "Chromium/") {
		return false
	}
	// Desktop Safari, or an embedded WebKit view (bare frameworks UA).
	if strings.Contains(ua, "Version/") && strings.Contains(ua, "Safari") {
		return true
	}
	return strings.HasSuffix(ua, "AppleWebKit/605.1.15 (KHTML, like Gecko)")
}

func isChromium51Through66(ua string) bool {
	for _, token := range []string{"Chrome/", "Chromium/"} {
		i := strings.Index(ua, token)
		if i < 0 {
			continue
		}
		major, _, _ := parseVersion(ua[i+len(token):])
		return major >= 51 && major <= 66
	}
	return false
}

// parseVersion reads up to three leading dot-separated numeric components.
// Missing or malformed components parse as zero.
func parseVersion(s string) (major, minor, build int) {
	parts := [3]int{}
	idx := 0
	for i := 0; i < len(s) && idx < 3; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			parts[idx] = parts[idx]*10 + int(c-'0')
		case c == '.':
			idx++
		default:
			return parts[0], parts[1], parts[2]
		}
	}
	return parts[0], parts[1], parts[2]
}
