package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorspace/internal/infrastructure/metrics"
	"floorspace/internal/metadata"
	"floorspace/pkg/logger"
)

const snapshot = `{
  "library": {
    "building_units": [{"id": "bu1", "name": "Unit A"}],
    "thermal_zones": [{"id": "tz1", "name": "Core"}],
    "doors": [{"id": "d1", "name": "Front Door"}]
  },
  "stories": [{
    "id": "st1",
    "name": "Ground",
    "handle": "h1",
    "floor_to_ceiling_height": 3,
    "multiplier": 1,
    "spaces": [
      {"id": "sp1", "name": "Lobby", "building_unit_id": "bu1", "thermal_zone_id": "tz1", "occupancy": 40},
      {"id": "sp2", "name": "Office"}
    ],
    "windows": [],
    "shading": [],
    "images": []
  }]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return NewRouter(RouterConfig{
		Logger:           logger.Nop(),
		MetadataRegistry: metadata.Default(),
		Metrics:          metrics.New(),
		MaxBodyBytes:     64 << 10,
	})
}

func do(r http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func lookupBody(id string) []byte {
	return []byte(`{"id":"` + id + `","state":` + snapshot + `}`)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(r, http.MethodGet, "/health/info", nil, nil)
	body := decode(t, rec)
	assert.Equal(t, "floorspace", body["app"])
	assert.Equal(t, 9.0, body["metadata"].(map[string]any)["entity_types"])
}

func TestListEntities(t *testing.T) {
	r := newTestRouter(t)

	body := decode(t, do(r, http.MethodGet, "/api/v1/meta", nil, nil))
	assert.Equal(t, 9.0, body["totalCount"])

	body = decode(t, do(r, http.MethodGet, "/api/v1/meta?creatable=true", nil, nil))
	assert.Equal(t, 7.0, body["totalCount"])
}

func TestGetEntity(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/meta/stories", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var d metadata.Descriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "Story", d.DisplayName)
	assert.False(t, d.Creatable)
	assert.Equal(t, "handle", d.Fields[2].Key)
	assert.True(t, d.Fields[2].Private)
	assert.Empty(t, d.Fields[2].DisplayName)

	rec = do(r, http.MethodGet, "/api/v1/meta/storys", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_ENTITY_TYPE", decode(t, rec)["code"])
}

func TestGetField(t *testing.T) {
	r := newTestRouter(t)

	body := decode(t, do(r, http.MethodGet, "/api/v1/meta/spaces/fields/thermal_zone_id", nil, nil))
	assert.Equal(t, "Thermal Zone", body["displayName"])
	assert.Equal(t, true, body["readOnly"])
	assert.Equal(t, true, body["declared"])

	body = decode(t, do(r, http.MethodGet, "/api/v1/meta/spaces/fields/face_id", nil, nil))
	assert.Nil(t, body["displayName"])
	assert.Equal(t, false, body["visible"])

	body = decode(t, do(r, http.MethodGet, "/api/v1/meta/spaces/fields/occupancy", nil, nil))
	assert.Equal(t, "occupancy", body["displayName"])
	assert.Equal(t, false, body["readOnly"])
	assert.Equal(t, false, body["declared"])
}

func TestNewObject(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/meta/windows/new", nil, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	obj := body["object"].(map[string]any)
	assert.Equal(t, "Window", obj["name"])
	assert.NotEmpty(t, obj["id"])

	rec = do(r, http.MethodPost, "/api/v1/meta/stories/new", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "NOT_CREATABLE", decode(t, rec)["code"])
}

func TestLookup(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/objects/lookup", lookupBody("sp1"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "spaces", body["type"])
	assert.Equal(t, "st1", body["storyId"])
	obj := body["object"].(map[string]any)
	assert.Equal(t, "Lobby", obj["name"])
	assert.Equal(t, 40.0, obj["occupancy"])

	rec = do(r, http.MethodPost, "/api/v1/objects/lookup", lookupBody("nowhere"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])

	rec = do(r, http.MethodPost, "/api/v1/objects/lookup", lookupBody("d1"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decode(t, rec)
	assert.Equal(t, "doors", body["type"])
	assert.Equal(t, "Front Door", body["object"].(map[string]any)["name"])

	metricsRec := do(r, http.MethodGet, "/metrics", nil, nil)
	assert.Contains(t, metricsRec.Body.String(), `floorspace_object_lookups_total{type="spaces"} 1`)
	assert.Contains(t, metricsRec.Body.String(), `floorspace_object_lookups_total{type="miss"} 1`)
}

func TestMetricsRecordErrorStatus(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/api/v1/meta/nope", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/api/v1/objects/lookup", lookupBody("nowhere"), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	out := do(r, http.MethodGet, "/metrics", nil, nil).Body.String()
	assert.Contains(t, out, `floorspace_http_requests_total{method="GET",route="/api/v1/meta/:type",status="400"} 1`)
	assert.Contains(t, out, `floorspace_http_requests_total{method="POST",route="/api/v1/objects/lookup",status="404"} 1`)
	assert.NotContains(t, out, `route="/api/v1/meta/:type",status="200"`)
}

func TestLookupValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/objects/lookup", []byte(`{"state":{}}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])

	rec = do(r, http.MethodPost, "/api/v1/objects/lookup", []byte(`{not json`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDisplay(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/objects/display", lookupBody("sp1"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Type     string         `json:"type"`
		TypeName string         `json:"typeName"`
		Rows     []metadata.Row `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "spaces", out.Type)
	assert.Equal(t, "Space", out.TypeName)

	values := map[string]any{}
	for _, row := range out.Rows {
		values[row.Key] = row.Value
		assert.NotEqual(t, "handle", row.Key)
		assert.NotEqual(t, "face_id", row.Key)
	}
	assert.Equal(t, "Unit A", values["building_unit_id"])
	assert.Equal(t, "Core", values["thermal_zone_id"])
	assert.Equal(t, "Lobby", values["name"])
	// numeric custom attributes are rendered as exact decimals
	assert.Equal(t, "40", values["occupancy"])

	rec = do(r, http.MethodPost, "/api/v1/objects/display",
		[]byte(`{"id":"st1","type":"stories","state":`+snapshot+`}`), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Lobby, Office"`)

	rec = do(r, http.MethodPost, "/api/v1/objects/display",
		[]byte(`{"id":"st1","type":"spaces","state":`+snapshot+`}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGzipBody(t *testing.T) {
	r := newTestRouter(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(lookupBody("sp2"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	rec := do(r, http.MethodPost, "/api/v1/objects/lookup", buf.Bytes(), map[string]string{"Content-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Office", decode(t, rec)["object"].(map[string]any)["name"])

	rec = do(r, http.MethodPost, "/api/v1/objects/lookup", []byte("plain"), map[string]string{"Content-Encoding": "gzip"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	r := NewRouter(RouterConfig{Logger: logger.Nop(), MaxBodyBytes: 128})

	body := `{"id":"sp1","state":{"stories":[{"id":"st1","name":"` + strings.Repeat("x", 512) + `"}]}}`
	rec := do(r, http.MethodPost, "/api/v1/objects/lookup", []byte(body), nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decode(t, rec)["code"])
}

func TestRecoveryRendersPanic(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := do(r, http.MethodGet, "/boom", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec)["code"])
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestTraceHeadersEchoed(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/health/live", nil, map[string]string{
		"X-Request-ID": "req-42",
		"X-Trace-ID":   "trace-42",
	})
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}
