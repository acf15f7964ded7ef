package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAPI serves canned bodies per path and keeps the decoded requests.
type recordingAPI struct {
	mu       sync.Mutex
	requests map[string][]map[string]any
	routes   map[string]string
}

func newRecordingAPI(t *testing.T, routes map[string]string) (*recordingAPI, string) {
	t.Helper()
	api := &recordingAPI{requests: map[string][]map[string]any{}, routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		api.mu.Lock()
		api.requests[r.URL.Path] = append(api.requests[r.URL.Path], payload)
		api.mu.Unlock()

		resp, ok := api.routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return api, srv.URL
}

func (a *recordingAPI) last(path string) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	reqs := a.requests[path]
	if len(reqs) == 0 {
		return nil
	}
	return reqs[len(reqs)-1]
}

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, url string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ANTICAPTCHA_API_KEY", "KEY")
	t.Setenv("ANTICAPTCHA_API_URL", url)

	var stdout, stderr bytes.Buffer
	cmd := Cmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBalanceCommand(t *testing.T) {
	api, url := newRecordingAPI(t, map[string]string{
		"/getBalance": `{"errorId":0,"balance":3.5}`,
	})

	out, _, err := run(t, url, "balance")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 3.5, res["balance"], 1e-9)
	assert.Equal(t, "KEY", api.last("/getBalance")["clientKey"])
}

func TestSolveCommand(t *testing.T) {
	api, url := newRecordingAPI(t, map[string]string{
		"/createTask":    `{"errorId":0,"taskId":77}`,
		"/getTaskResult": `{"errorId":0,"status":"ready","solution":{"token":"tok"}}`,
	})
	taskFile := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(taskFile,
		[]byte(`{"type":"TurnstileTaskProxyless","websiteURL":"https://example.com","websiteKey":"0x4AAA"}`), 0o600))

	out, stderr, err := run(t, url, "solve", "--task", taskFile, "--delay", "1ms", "--metrics")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ready", res["status"])
	assert.EqualValues(t, 77, res["taskId"])

	task, _ := api.last("/createTask")["task"].(map[string]any)
	assert.Equal(t, "TurnstileTaskProxyless", task["type"])
	assert.EqualValues(t, 77, api.last("/getTaskResult")["taskId"])

	assert.Contains(t, stderr, `anticaptcha_requests_total{endpoint="/createTask",outcome="ok"} 1`)
	assert.Contains(t, stderr, `anticaptcha_solves_total{outcome="ready",type="TurnstileTaskProxyless"} 1`)
}

func TestSolveCommand_APIError(t *testing.T) {
	_, url := newRecordingAPI(t, map[string]string{
		"/createTask": `{"errorId":1,"errorCode":"ERROR_KEY_DOES_NOT_EXIST","errorDescription":"bad key"}`,
	})
	taskFile := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(taskFile, []byte(`{"type":"ImageToTextTask","body":"aGk="}`), 0o600))

	out, _, err := run(t, url, "solve", "--task", taskFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR_KEY_DOES_NOT_EXIST")
	assert.Contains(t, out, `"errorId": 1`)
}

func TestSolveCommand_APIErrorStillDumpsMetrics(t *testing.T) {
	_, url := newRecordingAPI(t, map[string]string{
		"/createTask": `{"errorId":1,"errorCode":"ERROR_ZERO_BALANCE","errorDescription":"no funds"}`,
	})
	taskFile := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(taskFile, []byte(`{"type":"ImageToTextTask","body":"aGk="}`), 0o600))

	_, stderr, err := run(t, url, "solve", "--task", taskFile, "--metrics")
	require.ErrorContains(t, err, "ERROR_ZERO_BALANCE")
	assert.Contains(t, stderr, `anticaptcha_requests_total{endpoint="/createTask",outcome="api_error"} 1`)
	assert.Contains(t, stderr, `anticaptcha_solves_total{outcome="api_error",type="ImageToTextTask"} 1`)
}

func TestSolveCommand_UnknownTaskType(t *testing.T) {
	_, url := newRecordingAPI(t, nil)
	taskFile := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(taskFile, []byte(`{"type":"NoSuchTask"}`), 0o600))

	_, _, err := run(t, url, "solve", "--task", taskFile)
	assert.ErrorContains(t, err, "unknown type")
}

func TestQueueStatsCommand(t *testing.T) {
	api, url := newRecordingAPI(t, map[string]string{
		"/getQueueStats": `{"waiting":10,"load":50.5,"bid":"0.0007","speed":7.2,"total":100}`,
	})

	_, _, err := run(t, url, "queue-stats", "25", "CloudFlare cookies")
	require.NoError(t, err)

	req := api.last("/getQueueStats")
	assert.EqualValues(t, 25, req["queueId"])
	assert.Equal(t, "CloudFlare cookies", req["templateName"])
	assert.NotContains(t, req, "clientKey")
}

func TestReportCommands(t *testing.T) {
	api, url := newRecordingAPI(t, map[string]string{
		"/reportIncorrectImageCaptcha": `{"errorId":0,"status":"success"}`,
		"/reportIncorrectRecaptcha":    `{"errorId":0,"status":"success"}`,
		"/reportCorrectRecaptcha":      `{"errorId":0,"status":"success"}`,
	})

	for sub, path := range map[string]string{
		"image":               "/reportIncorrectImageCaptcha",
		"recaptcha-incorrect": "/reportIncorrectRecaptcha",
		"recaptcha-correct":   "/reportCorrectRecaptcha",
	} {
		_, _, err := run(t, url, "report", sub, "123")
		require.NoError(t, err, sub)
		assert.EqualValues(t, 123, api.last(path)["taskId"], sub)
	}
}

func TestTestCommand(t *testing.T) {
	api, url := newRecordingAPI(t, map[string]string{
		"/test": `"{\"errorId\":0,\"echo\":true}"`,
	})

	out, _, err := run(t, url, "test", "foo=bar", "n=5", "clientKey=hijack")
	require.NoError(t, err)
	assert.JSONEq(t, `{"errorId":0,"echo":true}`, out)

	req := api.last("/test")
	assert.Equal(t, "bar", req["foo"])
	assert.EqualValues(t, 5, req["n"])
	assert.Equal(t, "KEY", req["clientKey"])
}

func TestTestCommand_BadArg(t *testing.T) {
	_, url := newRecordingAPI(t, nil)
	_, _, err := run(t, url, "test", "novalue")
	assert.ErrorContains(t, err, "key=value")
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, "plain", parseValue("plain"))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, true, parseValue("true"))
	assert.Equal(t, map[string]any{"a": "b"}, parseValue(`{"a":"b"}`))
}

func TestSolveCommand_VerboseRunID(t *testing.T) {
	_, url := newRecordingAPI(t, map[string]string{
		"/createTask":    `{"errorId":0,"taskId":8}`,
		"/getTaskResult": `{"errorId":0,"status":"ready","solution":{"text":"ok"}}`,
	})
	taskFile := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(taskFile, []byte(`{"type":"ImageToTextTask","body":"aGk="}`), 0o600))

	_, stderr, err := run(t, url, "solve", "--task", taskFile, "--delay", "1ms", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="task created"`)
	assert.Regexp(t, `identifier=[0-9a-f-]{36}`, stderr)
}
