package anticaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"time"
)

// Client is the Anti-Captcha API client. It is safe for concurrent use;
// nothing in it changes after NewClient returns.
type Client struct {
	clientKey string
	cfg       ClientConfig

	// sleep waits between polls. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client for the given API key. It performs no I/O.
func NewClient(clientKey string, cfg ClientConfig) *Client {
	cfg.defaults()
	return &Client{
		clientKey: clientKey,
		cfg:       cfg,
		sleep:     sleepContext,
	}
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() ClientConfig {
	return c.cfg
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// do POSTs payload to path and decodes the normalized response into result.
// Only transport-level problems are returned as errors.
func (c *Client) do(ctx context.Context, path string, payload, result any) error {
	start := time.Now()
	outcome := OutcomeTransportError
	defer func() {
		c.recordAPICall(path, outcome, time.Since(start))
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", path, err)
	}
	data, err := c.cfg.Transport.Post(ctx, c.cfg.APIURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := parseResponse(data, result); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outcome = OutcomeOK
	if r, ok := result.(interface{ Failed() bool }); ok && r.Failed() {
		outcome = OutcomeAPIError
	}
	return nil
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(endpoint, outcome string, elapsed time.Duration) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(endpoint, outcome, elapsed)
	}
}

// verbose logs a solve-loop message when ClientConfig.Verbose is set.
func (c *Client) verbose(msg string, attrs ...slog.Attr) {
	if !c.cfg.Verbose {
		return
	}
	if c.cfg.VerboseIdentifier != "" {
		attrs = append(attrs, slog.String("identifier", c.cfg.VerboseIdentifier))
	}
	c.cfg.Logger.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

type createTaskRequest struct {
	ClientKey   string `json:"clientKey"`
	Task        Task   `json:"task"`
	SoftID      int    `json:"softId,omitempty"`
	CallbackURL string `json:"callbackUrl,omitempty"`
}

type taskRequest struct {
	ClientKey string `json:"clientKey"`
	TaskID    TaskID `json:"taskId"`
}

// CreateTask submits a task. callbackURL overrides ClientConfig.CallbackURL
// for this task only. API failures come back in the response (ErrorID=1),
// not as an error.
func (c *Client) CreateTask(ctx context.Context, task Task, callbackURL ...string) (*CreateTaskResponse, error) {
	req := createTaskRequest{
		ClientKey:   c.clientKey,
		Task:        task,
		SoftID:      c.cfg.SoftID,
		CallbackURL: c.cfg.CallbackURL,
	}
	if len(callbackURL) > 0 && callbackURL[0] != "" {
		req.CallbackURL = callbackURL[0]
	}

	var resp CreateTaskResponse
	if err := c.do(ctx, pathCreateTask, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTaskResult fetches the current state of a task. The status is not
// interpreted here.
func (c *Client) GetTaskResult(ctx context.Context, taskID TaskID) (*TaskResultResponse, error) {
	var resp TaskResultResponse
	if err := c.do(ctx, pathGetTaskResult, taskRequest{ClientKey: c.clientKey, TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Solve creates a task and polls until it is ready or fails.
//
// The first poll happens after min(Delay, 2s), later polls every Delay.
// There is no iteration limit: the loop ends on status "ready", on
// errorId=1, on a transport error, or when ctx is done. API failures are
// returned in the result with a nil error; check result.Failed() first.
func (c *Client) Solve(ctx context.Context, task Task) (*SolveResult, error) {
	if isNilTask(task) {
		return &SolveResult{TaskResultResponse: TaskResultResponse{
			ErrorInfo: ErrorInfo{
				ErrorID:          1,
				ErrorCode:        ErrCodeInvalidTaskData,
				ErrorDescription: "Missing task data.",
			},
		}}, nil
	}

	created, err := c.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	if created.Failed() || created.TaskID == "" {
		return &SolveResult{
			TaskResultResponse: TaskResultResponse{
				ErrorInfo: created.ErrorInfo,
				Status:    created.Status,
				Solution:  created.Solution,
			},
			TaskID: created.TaskID,
		}, nil
	}

	taskID := created.TaskID
	c.verbose("task created",
		slog.String("taskId", taskID.String()), slog.String("type", task.TaskType()))

	if err := c.sleep(ctx, c.cfg.firstPollDelay()); err != nil {
		return nil, err
	}

	for {
		result, err := c.GetTaskResult(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if result.Ready() || result.Failed() {
			if result.Ready() {
				c.verbose("task solved", slog.String("taskId", taskID.String()))
			} else {
				c.verbose("task failed", slog.String("taskId", taskID.String()),
					slog.String("errorCode", result.ErrorCode))
			}
			return &SolveResult{TaskResultResponse: *result, TaskID: taskID}, nil
		}

		c.verbose("task processing, waiting",
			slog.String("taskId", taskID.String()), slog.Duration("delay", c.cfg.Delay))
		if err := c.sleep(ctx, c.cfg.Delay); err != nil {
			return nil, err
		}
	}
}

// isNilTask reports a missing task: a nil interface or a typed nil pointer.
func isNilTask(task Task) bool {
	if task == nil {
		return true
	}
	v := reflect.ValueOf(task)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
