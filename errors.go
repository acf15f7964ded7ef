package anticaptcha

import (
	"errors"
	"fmt"
)

// Error codes synthesized locally or commonly returned by the API.
// Full list: https://anti-captcha.com/apidoc/errors
const (
	ErrCodeInvalidTaskData     = "ERROR_INVALID_TASK_DATA"
	ErrCodeKeyDoesNotExist     = "ERROR_KEY_DOES_NOT_EXIST"
	ErrCodeZeroBalance         = "ERROR_ZERO_BALANCE"
	ErrCodeNoSlotAvailable     = "ERROR_NO_SLOT_AVAILABLE"
	ErrCodeCaptchaUnsolvable   = "ERROR_CAPTCHA_UNSOLVABLE"
	ErrCodeNoSuchCaptchaID     = "ERROR_NO_SUCH_CAPCHA_ID"
	ErrCodeTaskAbsent          = "ERROR_TASK_ABSENT"
	ErrCodeTaskNotSupported    = "ERROR_TASK_NOT_SUPPORTED"
	ErrCodeProxyConnectRefused = "ERROR_PROXY_CONNECT_REFUSED"
	ErrCodeProxyConnectTimeout = "ERROR_PROXY_CONNECT_TIMEOUT"
	ErrCodeProxyReadTimeout    = "ERROR_PROXY_READ_TIMEOUT"
)

// errorClass categorizes Anti-Captcha error codes for targeted handling.
type errorClass int

const (
	errNone        errorClass = iota
	errAuth                   // bad or blocked key / ip
	errBalance                // account out of funds
	errNoSlot                 // workers busy, resubmit later
	errUnsolvable             // workers could not solve this instance
	errProxy                  // caller-supplied proxy unusable
	errBadInput               // malformed or unsupported task
	errTaskMissing            // unknown or expired task id
	errUnknown                // non-empty code not listed here
)

// classifyError maps an API error code to its class.
func classifyError(code string) errorClass {
	switch code {
	case "":
		return errNone
	case ErrCodeKeyDoesNotExist, "ERROR_IP_NOT_ALLOWED", "ERROR_IP_BLOCKED", "ERROR_ACCOUNT_SUSPENDED":
		return errAuth
	case ErrCodeZeroBalance:
		return errBalance
	case ErrCodeNoSlotAvailable:
		return errNoSlot
	case ErrCodeCaptchaUnsolvable, "ERROR_RECAPTCHA_TIMEOUT", "ERROR_FAILED_LOADING_WIDGET":
		return errUnsolvable
	case ErrCodeProxyConnectRefused, ErrCodeProxyConnectTimeout, ErrCodeProxyReadTimeout,
		"ERROR_PROXY_BANNED", "ERROR_PROXY_TRANSPARENT":
		return errProxy
	case ErrCodeInvalidTaskData, ErrCodeTaskNotSupported, "ERROR_ZERO_CAPTCHA_FILESIZE",
		"ERROR_TOO_BIG_CAPTCHA_FILESIZE", "ERROR_IMAGE_TYPE_NOT_SUPPORTED",
		"ERROR_RECAPTCHA_INVALID_SITEKEY", "ERROR_RECAPTCHA_INVALID_DOMAIN",
		"ERROR_TEMPLATE_NOT_FOUND", "ERROR_NO_SUCH_METHOD":
		return errBadInput
	case ErrCodeNoSuchCaptchaID, ErrCodeTaskAbsent:
		return errTaskMissing
	}
	return errUnknown
}

// APIError is an in-band API failure (errorId=1) converted to a Go error.
type APIError struct {
	ErrorID     int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("anticaptcha: %s", e.Code)
	}
	return fmt.Sprintf("anticaptcha: %s: %s", e.Code, e.Description)
}

// HTTPError is a non-2xx transport response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func newHTTPError(status int, body []byte) *HTTPError {
	return &HTTPError{StatusCode: status, Body: string(body[:min(200, len(body))])}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("anticaptcha HTTP %d: %s", e.StatusCode, e.Body)
}

// IsRetryable reports whether resubmitting the task may succeed.
// Only API-tier errors are considered; transport errors return false.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch classifyError(apiErr.Code) {
	case errNoSlot, errUnsolvable:
		return true
	}
	return apiErr.Code == ErrCodeProxyConnectTimeout || apiErr.Code == ErrCodeProxyReadTimeout
}

// IsAuthError reports whether err is caused by an invalid or blocked API key.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && classifyError(apiErr.Code) == errAuth
}

// IsBalanceError reports whether err is caused by an empty account balance.
func IsBalanceError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && classifyError(apiErr.Code) == errBalance
}
