package anticaptcha

import stealth "github.com/anatolykoptev/go-stealth"

// apiHeaders returns the headers sent with every API request.
func apiHeaders() map[string]string {
	return map[string]string{
		"content-type": "application/json",
		"accept":       "application/json",
	}
}

// browserHeaders extends apiHeaders with the browser identity used by StealthTransport.
func browserHeaders(userAgent string) map[string]string {
	h := apiHeaders()
	h["user-agent"] = userAgent
	h["accept-language"] = "en-US,en;q=0.9"
	h["accept-encoding"] = "gzip, deflate, br"
	if ch := stealth.ClientHintsHeaders(userAgent); ch != nil {
		for k, v := range ch {
			h[k] = v
		}
	}
	return h
}

// apiHeaderOrder is the wire order of headers for StealthTransport.
var apiHeaderOrder = []string{
	"content-type",
	"accept",
	"sec-ch-ua",
	"sec-ch-ua-mobile",
	"sec-ch-ua-platform",
	"user-agent",
	"accept-encoding",
	"accept-language",
}
