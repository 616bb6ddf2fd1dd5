package aigame_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/genai-learning-games/internal/aigame"
)

func serve(t *testing.T, p *stubProvider, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := aigame.Routes(aigame.NewHandler(newService(p, "key")))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWelcome(t *testing.T) {
	rec := serve(t, &stubProvider{}, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the GenAI Learning Games API!", decodeBody(t, rec)["message"])
}

func TestGenerateQuestionHandler(t *testing.T) {
	t.Run("Algebra", func(t *testing.T) {
		p := &stubProvider{reply: "What is x in 2x=10?", models: []string{testModel}}
		rec := serve(t, p, http.MethodGet, "/generate_question?topic=algebra", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"question": "What is x in 2x=10?"}`, rec.Body.String())
	})

	t.Run("DefaultTopic", func(t *testing.T) {
		p := &stubProvider{reply: "What is 3*4?", models: []string{testModel}}
		rec := serve(t, p, http.MethodGet, "/generate_question", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Generate a math learning question."}, p.prompts)
	})

	t.Run("ModelNotFound", func(t *testing.T) {
		p := &stubProvider{reply: "unused"}
		rec := serve(t, p, http.MethodGet, "/generate_question?topic=algebra", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Model models/gemini-1.5-flash not found. Check your API access.", decodeBody(t, rec)["detail"])
		assert.Zero(t, p.calls())
	})
}

func TestEvaluateAnswerHandler(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		p := &stubProvider{reply: "Incorrect; 2+2=4.", models: []string{testModel}}
		rec := serve(t, p, http.MethodPost, "/evaluate_answer", `{"question":"2+2?","answer":"5"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"feedback": "Incorrect; 2+2=4."}`, rec.Body.String())
	})

	t.Run("EmptyStringsAreAccepted", func(t *testing.T) {
		p := &stubProvider{reply: "Please answer.", models: []string{testModel}}
		rec := serve(t, p, http.MethodPost, "/evaluate_answer", `{"question":"2+2?","answer":""}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, p.calls())
	})
}

func TestEvaluateAnswerValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLoc []any
	}{
		{"missing answer", `{"question":"2+2?"}`, []any{"body", "answer"}},
		{"missing question", `{"answer":"5"}`, []any{"body", "question"}},
		{"null question", `{"question":null,"answer":"5"}`, []any{"body", "question"}},
		{"wrong type", `{"question":"2+2?","answer":5}`, []any{"body", "answer"}},
		{"malformed json", `{"question":`, []any{"body"}},
		{"empty body", ``, []any{"body"}},
		{"trailing data", `{"question":"a","answer":"b"} garbage`, []any{"body"}},
		{"second object", `{"question":"a","answer":"b"}{}`, []any{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &stubProvider{reply: "unused", models: []string{testModel}}
			h := aigame.Routes(aigame.NewHandler(newService(p, "key")))
			req := httptest.NewRequest(http.MethodPost, "/evaluate_answer", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			detail, ok := decodeBody(t, rec)["detail"].([]any)
			require.True(t, ok)
			require.NotEmpty(t, detail)
			issue := detail[0].(map[string]any)
			assert.Equal(t, tt.wantLoc, issue["loc"])
			assert.Zero(t, p.calls())
		})
	}
}

func TestProviderFailuresOnBothEndpoints(t *testing.T) {
	requests := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/generate_question?topic=algebra", ""},
		{http.MethodPost, "/evaluate_answer", `{"question":"2+2?","answer":"5"}`},
	}

	failures := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "rate limited",
			err:        &aigame.ProviderError{Kind: aigame.KindRateLimited, Err: errors.New("resource exhausted")},
			wantStatus: http.StatusTooManyRequests,
			wantDetail: "Quota exceeded. Please try again later.",
		},
		{
			name:       "invalid request",
			err:        &aigame.ProviderError{Kind: aigame.KindInvalidRequest, Err: errors.New("unsupported topic")},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid request: unsupported topic",
		},
		{
			name:       "unexpected",
			err:        &aigame.ProviderError{Kind: aigame.KindUnexpected, Err: errors.New("timeout")},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Unexpected error: timeout",
		},
	}

	for _, f := range failures {
		for _, r := range requests {
			t.Run(f.name+" "+r.target, func(t *testing.T) {
				p := &stubProvider{err: f.err, models: []string{testModel}}
				rec := serve(t, p, r.method, r.target, r.body)

				assert.Equal(t, f.wantStatus, rec.Code)
				assert.Equal(t, f.wantDetail, decodeBody(t, rec)["detail"])
			})
		}
	}
}
