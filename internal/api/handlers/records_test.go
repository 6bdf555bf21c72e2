package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/mdewolf/cfadmin/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordsUpstream fakes the dns_records endpoints for a single zone and
// counts every request it receives.
type recordsUpstream struct {
	mux   *http.ServeMux
	calls atomic.Int64
}

func newRecordsUpstream() *recordsUpstream {
	u := &recordsUpstream{mux: http.NewServeMux()}

	u.mux.HandleFunc("/zones/z1/dns_records", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{
				"success": true,
				"errors": [],
				"result": [
					{"id":"rec1","type":"A","name":"www.example.com","content":"203.0.113.10","ttl":300,"proxied":true,"proxiable":true},
					{"id":"rec2","type":"MX","name":"example.com","content":"mail.example.com","ttl":3600,"proxied":false,"proxiable":false,"priority":10},
					{"id":"rec3","type":"LOC","name":"geo.example.com","content":"51 30 12.748 N","ttl":3600,"proxied":false,"proxiable":false}
				],
				"result_info": {"page":1,"per_page":100,"count":3,"total_count":3,"total_pages":1}
			}`))
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			var echo map[string]any
			json.Unmarshal(body, &echo) //nolint:errcheck
			echo["id"] = "rec-new"
			echo["proxiable"] = echo["type"] == "A"
			result, _ := json.Marshal(echo)
			w.Write([]byte(`{"success":true,"errors":[],"result":` + string(result) + `}`))
		}
	})

	u.mux.HandleFunc("/zones/z1/dns_records/rec1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPatch:
			w.Write([]byte(`{"success":true,"errors":[],"result":{"id":"rec1","type":"A","name":"www.example.com","content":"203.0.113.99","ttl":300,"proxied":true,"proxiable":true,"comment":"updated"}}`))
		case http.MethodDelete:
			w.Write([]byte(`{"success":true,"errors":[],"result":{"id":"rec1"}}`))
		}
	})

	return u
}

func (u *recordsUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.calls.Add(1)
	u.mux.ServeHTTP(w, r)
}

func TestListRecords_MapsRecordFields(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "GET", "/api/v1/zones/z1/records", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.RecordListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Count)

	assert.Equal(t, "rec1", resp.Records[0].ID)
	assert.Equal(t, "A", resp.Records[0].Type)
	assert.True(t, resp.Records[0].Proxied)
	assert.Nil(t, resp.Records[0].Priority)

	require.NotNil(t, resp.Records[1].Priority)
	assert.Equal(t, uint16(10), *resp.Records[1].Priority)

	// A kind the editor cannot write still renders in listings.
	assert.Equal(t, "Other", resp.Records[2].Type)
}

func TestCreateRecord_Success(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records",
		`{"type":"A","name":"api.example.com","content":"203.0.113.20","ttl":300,"proxied":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.DNSRecord
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "rec-new", resp.ID)
	assert.Equal(t, "A", resp.Type)
	assert.Equal(t, "203.0.113.20", resp.Content)
}

func TestCreateRecord_InvalidIPv4(t *testing.T) {
	upstream := newRecordsUpstream()
	h, st := newTestHandler(t, upstream)
	withToken(t, h, st)
	before := upstream.calls.Load()
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records",
		`{"type":"A","name":"api.example.com","content":"not-an-ip","ttl":300}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Invalid IPv4 address", resp.Error)

	// Validation failures never reach Cloudflare.
	assert.Equal(t, before, upstream.calls.Load())
}

func TestCreateRecord_IPv4ContentForAAAA(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records",
		`{"type":"AAAA","name":"api.example.com","content":"203.0.113.20","ttl":300}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Invalid IPv6 address", resp.Error)
}

func TestCreateRecord_MXWithoutPriority(t *testing.T) {
	upstream := newRecordsUpstream()
	h, st := newTestHandler(t, upstream)
	withToken(t, h, st)
	before := upstream.calls.Load()
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records",
		`{"type":"MX","name":"example.com","content":"mail.example.com","ttl":3600}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Priority is required for MX records", resp.Error)
	assert.Equal(t, before, upstream.calls.Load())
}

func TestCreateRecord_UnsupportedType(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records",
		`{"type":"LOC","name":"geo.example.com","content":"51 30 12.748 N","ttl":3600}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Unsupported record type: LOC", resp.Error)
}

func TestCreateRecord_MissingRequiredFields(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "POST", "/api/v1/zones/z1/records", `{"content":"203.0.113.20"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecord_PartialUpdate(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "PUT", "/api/v1/zones/z1/records/rec1",
		`{"type":"A","content":"203.0.113.99","comment":"updated"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.DNSRecord
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.99", resp.Content)
	assert.Equal(t, "updated", resp.Comment)
}

func TestUpdateRecord_ContentRequiresType(t *testing.T) {
	// Without the type the content shape cannot be checked, so the
	// update is rejected before it reaches Cloudflare.
	upstream := newRecordsUpstream()
	h, st := newTestHandler(t, upstream)
	withToken(t, h, st)
	before := upstream.calls.Load()
	r := setupRouter(h)

	w := performRequest(r, "PUT", "/api/v1/zones/z1/records/rec1",
		`{"content":"203.0.113.99"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Type is required when content is set", resp.Error)
	assert.Equal(t, before, upstream.calls.Load())
}

func TestUpdateRecord_TypeChangeValidatesContent(t *testing.T) {
	upstream := newRecordsUpstream()
	h, st := newTestHandler(t, upstream)
	withToken(t, h, st)
	before := upstream.calls.Load()
	r := setupRouter(h)

	w := performRequest(r, "PUT", "/api/v1/zones/z1/records/rec1",
		`{"type":"AAAA","content":"203.0.113.99"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, before, upstream.calls.Load())
}

func TestDeleteRecord_Success(t *testing.T) {
	h, st := newTestHandler(t, newRecordsUpstream())
	withToken(t, h, st)
	r := setupRouter(h)

	w := performRequest(r, "DELETE", "/api/v1/zones/z1/records/rec1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestDeleteRecord_NoTokenConfigured(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	r := setupRouter(h)

	w := performRequest(r, "DELETE", "/api/v1/zones/z1/records/rec1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
