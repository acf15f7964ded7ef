package captcha

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	anticaptcha "github.com/anatolykoptev/go-anticaptcha"
)

const balanceWarnLevel = 5.0 // warn when balance drops below $5

// TaskBuilder turns a site key and page URL into the task to submit.
type TaskBuilder func(siteKey, pageURL string) anticaptcha.Task

// FunCaptcha builds a proxyless Arkose Labs task.
func FunCaptcha(siteKey, pageURL string) anticaptcha.Task {
	return anticaptcha.FunCaptchaTaskProxyless{WebsiteURL: pageURL, WebsitePublicKey: siteKey}
}

// RecaptchaV2 builds a proxyless reCAPTCHA v2 task.
func RecaptchaV2(siteKey, pageURL string) anticaptcha.Task {
	return anticaptcha.RecaptchaV2TaskProxyless{WebsiteURL: pageURL, WebsiteKey: siteKey}
}

// Turnstile builds a proxyless Cloudflare Turnstile task.
func Turnstile(siteKey, pageURL string) anticaptcha.Task {
	return anticaptcha.TurnstileTaskProxyless{WebsiteURL: pageURL, WebsiteKey: siteKey}
}

// AntiCaptcha implements Solver using the Anti-Captcha API.
type AntiCaptcha struct {
	client *anticaptcha.Client
	build  TaskBuilder
}

// NewAntiCaptcha wraps client. A nil build defaults to FunCaptcha.
func NewAntiCaptcha(client *anticaptcha.Client, build TaskBuilder) *AntiCaptcha {
	if build == nil {
		build = FunCaptcha
	}
	return &AntiCaptcha{client: client, build: build}
}

// Solve submits the challenge and polls until a token is available.
// API failures are returned as *anticaptcha.APIError.
func (a *AntiCaptcha) Solve(ctx context.Context, siteKey, pageURL string) (string, error) {
	logger := a.client.Config().Logger
	bal, balErr := a.Balance(ctx)
	if balErr == nil && bal < balanceWarnLevel {
		logger.Warn("Anti-Captcha balance low", slog.Float64("balance", bal))
	}

	task := a.build(siteKey, pageURL)
	res, err := a.client.Solve(ctx, task)
	if err != nil {
		return "", fmt.Errorf("anticaptcha solve: %w", err)
	}
	if err := res.Err(); err != nil {
		return "", err
	}

	token := res.Solution.Token()
	if token == "" {
		return "", fmt.Errorf("anticaptcha: task %s ready but empty token", res.TaskID)
	}
	logger.Info("CAPTCHA solved", slog.String("taskId", res.TaskID.String()), slog.String("type", task.TaskType()))
	return token, nil
}

// Balance returns the Anti-Captcha account balance in USD.
func (a *AntiCaptcha) Balance(ctx context.Context) (float64, error) {
	resp, err := a.client.GetBalance(ctx)
	if err != nil {
		return 0, err
	}
	if err := resp.Err(); err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}
	return resp.Balance, nil
}

// IsRetryable reports whether a Solve error is worth another attempt.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return anticaptcha.IsRetryable(err)
}
