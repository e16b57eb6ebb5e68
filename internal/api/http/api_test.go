package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/model"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/services"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store/storetest"
)

// newTestServer runs the full router over an in-memory store, with the
// instruction catalog seeded unless told otherwise.
func newTestServer(t *testing.T, seed bool) (*httptest.Server, *storetest.Fake) {
	t.Helper()
	fake := storetest.NewFake()
	if seed {
		require.NoError(t, services.NewInstructionService(fake).Bootstrap(context.Background()))
	}
	srv := httptest.NewServer(NewRouter(fake, nil))
	t.Cleanup(srv.Close)
	return srv, fake
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRootEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "Emergency Response API", body["message"])
	assert.Equal(t, "active", body["status"])
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "UP", body["status"])
}

func TestListAllInstructions(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/emergency-instructions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	lst := decode[[]model.EmergencyInstruction](t, resp)
	assert.Len(t, lst, 6)
	for _, ins := range lst {
		assert.Equal(t, len(ins.Steps), len(ins.VoiceInstructions), "%s: step/voice parity", ins.Title)
	}
}

func TestListInstructionsByType(t *testing.T) {
	srv, _ := newTestServer(t, true)

	for _, et := range model.EmergencyTypes() {
		resp, err := http.Get(srv.URL + "/api/emergency-instructions/" + string(et))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "type %s", et)

		lst := decode[[]model.EmergencyInstruction](t, resp)
		assert.NotEmpty(t, lst, "type %s", et)
		for _, ins := range lst {
			assert.Equal(t, et, ins.Type)
		}
	}
}

func TestListInstructionsByType_UnknownToken(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/emergency-instructions/earthquake")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListInstructionsByType_EmptyCatalog(t *testing.T) {
	srv, _ := newTestServer(t, false) // valid type, nothing seeded

	resp, err := http.Get(srv.URL + "/api/emergency-instructions/choking")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateHelpRequest(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "choking",
		"location_description": "123 Test St",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	hr := decode[model.HelpRequest](t, resp)
	assert.NotEmpty(t, hr.ID)
	assert.Equal(t, model.StatusActive, hr.Status)
	assert.True(t, hr.CreatedAt.Equal(hr.UpdatedAt))
}

func TestCreateHelpRequest_MissingRequiredField(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type": "choking",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateHelpRequest_UnknownType(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "earthquake",
		"location_description": "123 Test St",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetHelpRequest(t *testing.T) {
	srv, _ := newTestServer(t, true)

	created := decode[model.HelpRequest](t, doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "bleeding",
		"location_description": "45 Elm Ave",
	}))

	resp, err := http.Get(srv.URL + "/api/help-requests/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.HelpRequest](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "45 Elm Ave", got.LocationDescription)
}

func TestGetHelpRequest_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/help-requests/nonexistent-id")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateHelpRequestStatus(t *testing.T) {
	srv, _ := newTestServer(t, true)

	created := decode[model.HelpRequest](t, doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "allergic_reaction",
		"location_description": "9 Dock Rd",
	}))

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/help-requests/"+created.ID, map[string]any{
		"status": "responded",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	upd := decode[model.HelpRequest](t, resp)
	assert.Equal(t, model.StatusResponded, upd.Status)
	assert.False(t, upd.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateHelpRequestStatus_UnknownID(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/help-requests/nonexistent-id", map[string]any{
		"status": "resolved",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateHelpRequestStatus_InvalidStatus(t *testing.T) {
	srv, _ := newTestServer(t, true)

	created := decode[model.HelpRequest](t, doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "choking",
		"location_description": "1 Main St",
	}))

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/help-requests/"+created.ID, map[string]any{
		"status": "escalated",
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListHelpRequests_OnlyActive(t *testing.T) {
	srv, _ := newTestServer(t, true)

	a := decode[model.HelpRequest](t, doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "choking",
		"location_description": "stays active",
	}))
	b := decode[model.HelpRequest](t, doJSON(t, http.MethodPost, srv.URL+"/api/help-requests", map[string]any{
		"emergency_type":       "bleeding",
		"location_description": "gets resolved",
	}))
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/help-requests/"+b.ID, map[string]any{"status": "resolved"})
	_ = resp.Body.Close()

	listResp, err := http.Get(srv.URL + "/api/help-requests")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, listResp.StatusCode)
	lst := decode[[]model.HelpRequest](t, listResp)
	require.Len(t, lst, 1)
	assert.Equal(t, a.ID, lst[0].ID)
}

func TestListHelpRequests_EmptyIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp, err := http.Get(srv.URL + "/api/help-requests")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "[]", string(bytes.TrimSpace(raw)), "empty list must serialize as [], not null")
}
