package anticaptcha

import (
	"context"
	"encoding/json"
	"maps"
)

type clientKeyRequest struct {
	ClientKey string `json:"clientKey"`
}

// GetBalance returns the account balance.
func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, error) {
	var resp BalanceResponse
	if err := c.do(ctx, pathGetBalance, clientKeyRequest{ClientKey: c.clientKey}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReportIncorrectImageCaptcha reports a wrong image captcha answer.
func (c *Client) ReportIncorrectImageCaptcha(ctx context.Context, taskID TaskID) (*ReportResponse, error) {
	return c.report(ctx, pathReportIncorrectImageCaptcha, taskID)
}

// ReportIncorrectRecaptcha reports a reCAPTCHA token the target site rejected.
func (c *Client) ReportIncorrectRecaptcha(ctx context.Context, taskID TaskID) (*ReportResponse, error) {
	return c.report(ctx, pathReportIncorrectRecaptcha, taskID)
}

// ReportCorrectRecaptcha reports an accepted reCAPTCHA token. Used for
// statistics and worker whitelisting.
func (c *Client) ReportCorrectRecaptcha(ctx context.Context, taskID TaskID) (*ReportResponse, error) {
	return c.report(ctx, pathReportCorrectRecaptcha, taskID)
}

func (c *Client) report(ctx context.Context, path string, taskID TaskID) (*ReportResponse, error) {
	var resp ReportResponse
	if err := c.do(ctx, path, taskRequest{ClientKey: c.clientKey, TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PushAntiGateVariable sends a late variable to a running AntiGate task.
func (c *Client) PushAntiGateVariable(ctx context.Context, taskID TaskID, name string, value any) (*ReportResponse, error) {
	req := struct {
		ClientKey string `json:"clientKey"`
		TaskID    TaskID `json:"taskId"`
		Name      string `json:"name"`
		Value     any    `json:"value"`
	}{c.clientKey, taskID, name, value}

	var resp ReportResponse
	if err := c.do(ctx, pathPushAntiGateVariable, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetQueueStats returns the load of a worker queue. This call is not
// authenticated, so no client key is sent. templateName narrows the
// AntiGate queue (25) to one template and may be empty.
func (c *Client) GetQueueStats(ctx context.Context, queueID int, templateName string) (*QueueStatsResponse, error) {
	req := struct {
		QueueID      int    `json:"queueId"`
		TemplateName string `json:"templateName,omitempty"`
	}{queueID, templateName}

	var resp QueueStatsResponse
	if err := c.do(ctx, pathGetQueueStats, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSpendingStats returns spending statistics for a 24 hour window.
func (c *Client) GetSpendingStats(ctx context.Context, q SpendingStatsQuery) (*SpendingStatsResponse, error) {
	req := struct {
		ClientKey string `json:"clientKey"`
		Date      *int64 `json:"date,omitempty"`
		Queue     string `json:"queue,omitempty"`
		SoftID    int    `json:"softId,omitempty"`
		IP        string `json:"ip,omitempty"`
	}{c.clientKey, q.Date, q.Queue, q.SoftID, q.IP}

	var resp SpendingStatsResponse
	if err := c.do(ctx, pathGetSpendingStats, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAppStats returns daily statistics of a registered application.
// An empty mode means AppStatsErrors.
func (c *Client) GetAppStats(ctx context.Context, softID int, mode AppStatsMode) (*AppStatsResponse, error) {
	if mode == "" {
		mode = AppStatsErrors
	}
	req := struct {
		ClientKey string       `json:"clientKey"`
		SoftID    int          `json:"softId"`
		Mode      AppStatsMode `json:"mode"`
	}{c.clientKey, softID, mode}

	var resp AppStatsResponse
	if err := c.do(ctx, pathGetAppStats, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Test echoes the request back for debugging. extra is merged into the
// payload next to the client key; the normalized response is returned raw.
func (c *Client) Test(ctx context.Context, extra map[string]any) (json.RawMessage, error) {
	payload := make(map[string]any, len(extra)+1)
	maps.Copy(payload, extra)
	payload["clientKey"] = c.clientKey

	var resp json.RawMessage
	if err := c.do(ctx, pathTest, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
