package anticaptcha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ErrorInfo is embedded in every API response. ErrorID 0 means success,
// anything else means the other fields must not be trusted.
type ErrorInfo struct {
	ErrorID          int    `json:"errorId"`
	ErrorCode        string `json:"errorCode,omitempty"`
	ErrorDescription string `json:"errorDescription,omitempty"`
}

// Failed reports whether the response signals an API-level failure.
func (e ErrorInfo) Failed() bool { return e.ErrorID != 0 }

// Err returns the failure as an *APIError, or nil on success.
func (e ErrorInfo) Err() error {
	if !e.Failed() {
		return nil
	}
	return &APIError{ErrorID: e.ErrorID, Code: e.ErrorCode, Description: e.ErrorDescription}
}

// Status is a task status. The API sends null for tasks without a status,
// which decodes to the empty Status.
type Status string

const (
	StatusReady      Status = "ready"
	StatusProcessing Status = "processing"
)

// TaskID identifies a created task. The API sends numeric ids; string ids
// are accepted too. Numeric ids are sent back as JSON numbers.
type TaskID string

// UnmarshalJSON accepts a JSON number, string or null.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("taskId: %w", err)
		}
		*id = TaskID(n.String())
	}
	return nil
}

// MarshalJSON emits numeric ids as numbers and everything else as strings.
func (id TaskID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// numeric reports whether id is a canonical decimal, so "007" stays a string.
func (id TaskID) numeric() bool {
	n, err := strconv.ParseUint(string(id), 10, 64)
	return err == nil && strconv.FormatUint(n, 10) == string(id)
}

func (id TaskID) String() string { return string(id) }

// Solution is the provider's answer payload. Its shape depends on the task type.
type Solution map[string]any

// StringField returns the string field key, or "" if absent or not a string.
func (s Solution) StringField(key string) string {
	v, _ := s[key].(string)
	return v
}

// Text returns the answer of an image-to-text task.
func (s Solution) Text() string { return s.StringField("text") }

// GRecaptchaResponse returns the reCAPTCHA token.
func (s Solution) GRecaptchaResponse() string { return s.StringField("gRecaptchaResponse") }

// Token returns the token of FunCaptcha, Turnstile, Prosopo, Friendly Captcha
// and Altcha tasks. Falls back to gRecaptchaResponse.
func (s Solution) Token() string {
	if t := s.StringField("token"); t != "" {
		return t
	}
	return s.GRecaptchaResponse()
}

// Decode re-decodes the solution into a typed struct.
func (s Solution) Decode(v any) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// BalanceResponse is returned by getBalance.
type BalanceResponse struct {
	ErrorInfo
	// Balance in USD.
	Balance float64 `json:"balance"`
	// CaptchaCredits is only present for credit-based accounts.
	CaptchaCredits float64 `json:"captchaCredits,omitempty"`
}

// CreateTaskResponse is returned by createTask. TaskID is empty on failure.
type CreateTaskResponse struct {
	ErrorInfo
	Status   Status   `json:"status,omitempty"`
	Solution Solution `json:"solution,omitempty"`
	TaskID   TaskID   `json:"taskId,omitempty"`
}

// TaskResultResponse is returned by getTaskResult.
type TaskResultResponse struct {
	ErrorInfo
	Status   Status   `json:"status,omitempty"`
	Solution Solution `json:"solution,omitempty"`

	Cost       json.Number `json:"cost,omitempty"`
	IP         string      `json:"ip,omitempty"`
	CreateTime int64       `json:"createTime,omitempty"`
	EndTime    int64       `json:"endTime,omitempty"`
	SolveCount json.Number `json:"solveCount,omitempty"`
}

// Ready reports whether the task finished successfully.
func (r *TaskResultResponse) Ready() bool { return r.Status == StatusReady }

// SolveResult is the outcome of Solve: the final task result plus the id
// that produced it. Check Failed() before reading Solution.
type SolveResult struct {
	TaskResultResponse
	TaskID TaskID `json:"taskId,omitempty"`
}

// ReportResponse is returned by the report and pushAntiGateVariable calls.
type ReportResponse struct {
	ErrorInfo
	Status string `json:"status,omitempty"`
}

// QueueStatsResponse is returned by getQueueStats.
type QueueStatsResponse struct {
	ErrorInfo
	// Waiting is the number of idle workers online.
	Waiting int `json:"waiting"`
	// Load is the queue load in percent.
	Load float64 `json:"load"`
	// Bid is the average task cost in USD.
	Bid json.Number `json:"bid"`
	// Speed is the average solve time in seconds.
	Speed float64 `json:"speed"`
	Total int     `json:"total"`
}

// SpendingStatsRecord is one period of spending statistics.
type SpendingStatsRecord struct {
	DateFrom int64   `json:"dateFrom"`
	DateTill int64   `json:"dateTill"`
	Volume   int     `json:"volume"`
	Money    float64 `json:"money"`
}

// SpendingStatsResponse is returned by getSpendingStats.
type SpendingStatsResponse struct {
	ErrorInfo
	Data []SpendingStatsRecord `json:"data"`
}

// ChartDataPoint is one point of an app statistics chart.
type ChartDataPoint struct {
	Date       string  `json:"date"`
	ShortDate  string  `json:"shortdate"`
	Y          float64 `json:"y"`
	BeginStamp int64   `json:"beginstamp"`
	EndStamp   int64   `json:"endstamp"`
	Stamp      int64   `json:"stamp"`
}

// ChartDataSeries is one series of an app statistics chart.
type ChartDataSeries struct {
	Name        string           `json:"name"`
	Data        []ChartDataPoint `json:"data"`
	ItemName    string           `json:"itemname"`
	ErrorID     int              `json:"errorId"`
	Count       int              `json:"count,omitempty"`
	Code        string           `json:"code"`
	Description string           `json:"description"`
}

// AppStatsResponse is returned by getAppStats.
type AppStatsResponse struct {
	ErrorInfo
	ChartData []ChartDataSeries `json:"chartData"`
	FromDate  string            `json:"fromDate"`
	ToDate    string            `json:"toDate"`
}

// AppStatsMode selects the getAppStats report.
type AppStatsMode string

const (
	AppStatsErrors    AppStatsMode = "errors"
	AppStatsViews     AppStatsMode = "views"
	AppStatsDownloads AppStatsMode = "downloads"
	AppStatsUsers     AppStatsMode = "users"
	AppStatsMoney     AppStatsMode = "money"
)

// SpendingStatsQuery filters getSpendingStats. Zero fields are omitted.
type SpendingStatsQuery struct {
	// Date is the unix timestamp of the hour the 24h window starts at.
	Date   *int64
	Queue  string
	SoftID int
	IP     string
}
