// Package captcha adapts the Anti-Captcha client to a token-only solver for
// callers that only need a widget response token for a page.
package captcha

import "context"

// Solver returns response tokens for token-based widgets.
type Solver interface {
	// Solve returns the token for the widget with siteKey on pageURL.
	Solve(ctx context.Context, siteKey, pageURL string) (token string, err error)

	// Balance returns the account balance in USD.
	Balance(ctx context.Context) (float64, error)
}

var _ Solver = (*AntiCaptcha)(nil)
