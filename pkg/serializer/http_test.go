package serializer

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 200, map[string]any{"status": "ok", "count": 3})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","count":3}`, rec.Body.String())
}

func TestRespondJSONEncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 200, map[string]any{"bad": func() {}})

	assert.Equal(t, 500, rec.Code)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, 404, "snapshot not found")

	assert.Equal(t, 404, rec.Code)
	assert.JSONEq(t, `{"error":"snapshot not found"}`, rec.Body.String())
}
