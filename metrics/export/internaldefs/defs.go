package internaldefs

import (
	cookiesession "github.com/tavenkim/toa-cookie-session"
)

// CounterDef binds a middleware counter to its exported metric name.
type CounterDef struct {
	ID   cookiesession.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: cookiesession.MetricSessionLoaded, Name: "cookiesession_loaded_total", Help: "Sessions materialized from a valid cookie."},
	{ID: cookiesession.MetricSessionNew, Name: "cookiesession_new_total", Help: "Sessions created fresh with no valid cookie."},
	{ID: cookiesession.MetricDecodeFailure, Name: "cookiesession_decode_failure_total", Help: "Incoming cookies present but undecodable."},
	{ID: cookiesession.MetricCookieSet, Name: "cookiesession_cookie_set_total", Help: "Responses that carried a session cookie."},
	{ID: cookiesession.MetricCookieCleared, Name: "cookiesession_cookie_cleared_total", Help: "Responses that expired the session cookie."},
	{ID: cookiesession.MetricWriteSkipped, Name: "cookiesession_write_skipped_total", Help: "Finalizations that deliberately wrote no cookie."},
	{ID: cookiesession.MetricInvalidSet, Name: "cookiesession_invalid_set_total", Help: "Rejected SetSession values."},
	{ID: cookiesession.MetricWriteError, Name: "cookiesession_write_error_total", Help: "Cookie writes that failed."},
}
