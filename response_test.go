package anticaptcha

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_StringAndObjectBodiesMatch(t *testing.T) {
	object := `{"errorId":0,"status":"ready","solution":{"text":"deditur"},"cost":"0.000700","ip":"46.98.54.221","createTime":1406057560,"endTime":1406057635,"solveCount":"0"}`
	encoded := `"{\"errorId\":0,\"status\":\"ready\",\"solution\":{\"text\":\"deditur\"},\"cost\":\"0.000700\",\"ip\":\"46.98.54.221\",\"createTime\":1406057560,\"endTime\":1406057635,\"solveCount\":\"0\"}"`

	var fromObject, fromString TaskResultResponse
	require.NoError(t, parseResponse([]byte(object), &fromObject))
	require.NoError(t, parseResponse([]byte(encoded), &fromString))

	assert.Equal(t, fromObject, fromString)
	assert.Equal(t, "deditur", fromObject.Solution.Text())
	assert.Equal(t, "0.000700", fromObject.Cost.String())
	assert.Equal(t, int64(1406057635), fromObject.EndTime)
}

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"object", `{"errorId":0}`, `{"errorId":0}`},
		{"object with whitespace", "  {\"errorId\":0}\n", `{"errorId":0}`},
		{"string encoded object", `"{\"errorId\":0}"`, `{"errorId":0}`},
		{"array", `[1,2]`, `[1,2]`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBody([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParseResponse_Errors(t *testing.T) {
	var resp BalanceResponse
	assert.Error(t, parseResponse([]byte(``), &resp))
	assert.Error(t, parseResponse([]byte(`<html>502</html>`), &resp))
	assert.Error(t, parseResponse([]byte(`"unterminated`), &resp))
	assert.Error(t, parseResponse([]byte(`"not json inside"`), &resp))
}

func TestTaskID_JSON(t *testing.T) {
	var resp CreateTaskResponse
	require.NoError(t, parseResponse([]byte(`{"errorId":0,"taskId":7654321}`), &resp))
	assert.Equal(t, TaskID("7654321"), resp.TaskID)

	require.NoError(t, parseResponse([]byte(`{"errorId":0,"taskId":"abc-1"}`), &resp))
	assert.Equal(t, TaskID("abc-1"), resp.TaskID)

	resp = CreateTaskResponse{}
	require.NoError(t, parseResponse([]byte(`{"errorId":1,"taskId":null}`), &resp))
	assert.Empty(t, resp.TaskID)

	b, err := TaskID("7654321").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `7654321`, string(b))

	b, err = TaskID("abc-1").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"abc-1"`, string(b))

	for _, id := range []TaskID{"007", "0123", "0"} {
		b, err := json.Marshal(id)
		require.NoError(t, err, id)
		assert.True(t, json.Valid(b), id)

		var back TaskID
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, id, back)
	}
	b, err = json.Marshal(TaskID("007"))
	require.NoError(t, err)
	assert.Equal(t, `"007"`, string(b))
	b, err = json.Marshal(TaskID("0"))
	require.NoError(t, err)
	assert.Equal(t, `0`, string(b))
}

func TestSolution_Accessors(t *testing.T) {
	s := Solution{
		"gRecaptchaResponse": "03AGdBq25",
		"cookies":            map[string]any{"a": "b"},
		"count":              float64(2),
	}
	assert.Equal(t, "03AGdBq25", s.GRecaptchaResponse())
	assert.Equal(t, "03AGdBq25", s.Token())
	assert.Empty(t, s.Text())
	assert.Empty(t, s.StringField("count"))

	var typed struct {
		Token   string            `json:"gRecaptchaResponse"`
		Cookies map[string]string `json:"cookies"`
	}
	require.NoError(t, s.Decode(&typed))
	assert.Equal(t, "03AGdBq25", typed.Token)
	assert.Equal(t, "b", typed.Cookies["a"])

	assert.Equal(t, "tok", Solution{"token": "tok", "gRecaptchaResponse": "other"}.Token())
}

func TestErrorInfo_Err(t *testing.T) {
	assert.NoError(t, ErrorInfo{}.Err())

	err := ErrorInfo{ErrorID: 1, ErrorCode: "ERROR_NO_SLOT_AVAILABLE", ErrorDescription: "No idle workers"}.Err()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ERROR_NO_SLOT_AVAILABLE", apiErr.Code)
	assert.True(t, IsRetryable(err))
}
