package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doadrianh/bigspring-ai-take-home/internal/index/indextest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store/storetest"
)

func TestCheckHealth(t *testing.T) {
	h := NewHealthHandler(storetest.NewFake(), indextest.NewFake())

	rr := httptest.NewRecorder()
	h.CheckHealth(rr, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	// Fakes implement no ping, so nothing can be unhealthy.
	assert.Equal(t, "healthy", body.Status)
	assert.NotEmpty(t, body.Timestamp)
}
