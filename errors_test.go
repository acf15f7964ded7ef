package anticaptcha

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected errorClass
	}{
		{"empty", "", errNone},
		{"bad key", "ERROR_KEY_DOES_NOT_EXIST", errAuth},
		{"ip blocked", "ERROR_IP_BLOCKED", errAuth},
		{"zero balance", "ERROR_ZERO_BALANCE", errBalance},
		{"no slot", "ERROR_NO_SLOT_AVAILABLE", errNoSlot},
		{"unsolvable", "ERROR_CAPTCHA_UNSOLVABLE", errUnsolvable},
		{"proxy refused", "ERROR_PROXY_CONNECT_REFUSED", errProxy},
		{"proxy banned", "ERROR_PROXY_BANNED", errProxy},
		{"invalid task", "ERROR_INVALID_TASK_DATA", errBadInput},
		{"bad sitekey", "ERROR_RECAPTCHA_INVALID_SITEKEY", errBadInput},
		{"no such id", "ERROR_NO_SUCH_CAPCHA_ID", errTaskMissing},
		{"unknown code", "ERROR_SOMETHING_NEW", errUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyError(tt.code))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&APIError{ErrorID: 1, Code: ErrCodeNoSlotAvailable}))
	assert.True(t, IsRetryable(fmt.Errorf("solve: %w", &APIError{ErrorID: 1, Code: ErrCodeCaptchaUnsolvable})))
	assert.True(t, IsRetryable(&APIError{ErrorID: 1, Code: ErrCodeProxyReadTimeout}))
	assert.False(t, IsRetryable(&APIError{ErrorID: 1, Code: ErrCodeProxyConnectRefused}))
	assert.False(t, IsRetryable(&APIError{ErrorID: 1, Code: ErrCodeZeroBalance}))
	assert.False(t, IsRetryable(&HTTPError{StatusCode: 502}))
	assert.False(t, IsRetryable(nil))
}

func TestIsAuthAndBalanceError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{ErrorID: 1, Code: ErrCodeKeyDoesNotExist}))
	assert.False(t, IsAuthError(&APIError{ErrorID: 1, Code: ErrCodeZeroBalance}))
	assert.True(t, IsBalanceError(&APIError{ErrorID: 1, Code: ErrCodeZeroBalance}))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "anticaptcha: ERROR_ZERO_BALANCE: Account has zero balance",
		(&APIError{ErrorID: 1, Code: "ERROR_ZERO_BALANCE", Description: "Account has zero balance"}).Error())
	assert.Equal(t, "anticaptcha: E", (&APIError{ErrorID: 1, Code: "E"}).Error())

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	httpErr := newHTTPError(503, long)
	assert.Equal(t, 503, httpErr.StatusCode)
	assert.Len(t, httpErr.Body, 200)
}
