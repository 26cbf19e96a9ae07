// Package server_test exercises the JSON API against the sample
// network using httptest.
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metronav/metronav/mapfile"
	"github.com/metronav/metronav/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	network := mapfile.Sample()
	ts := httptest.NewServer(server.New(network.Graph(), network.TransferCost))
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, out interface{}) *http.Response {
	t.Helper()

	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

func TestStations_ListsSorted(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Stations []string `json:"stations"`
	}
	resp := get(t, ts, "/api/stations", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Len(t, body.Stations, 10)
	assert.Equal(t, "14th St", body.Stations[0])
	assert.Contains(t, body.Stations, "Times Sq")
}

func TestStation_NeighborEnumeration(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Name  string `json:"name"`
		Edges []struct {
			To   string `json:"to"`
			Cost int64  `json:"cost"`
			Line string `json:"line"`
		} `json:"edges"`
	}
	resp := get(t, ts, "/api/stations/"+url.PathEscape("Grand Central"), &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Grand Central", body.Name)
	// 42nd St (line 2), 14th St (line 2), Union Sq (interchange).
	assert.Len(t, body.Edges, 3)
}

func TestStation_UnknownIs404(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/api/stations/Atlantis", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type routeBody struct {
	Reachable bool  `json:"reachable"`
	Cost      int64 `json:"cost"`
	Transfers int   `json:"transfers"`
	Path      []struct {
		Station string `json:"station"`
		Line    string `json:"line"`
	} `json:"path"`
}

func TestRoute_Found(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{"from": {"Times Sq"}, "to": {"Grand Central"}}
	var body routeBody
	resp := get(t, ts, "/api/route?"+q.Encode(), &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Reachable)
	assert.Equal(t, int64(9), body.Cost)
	assert.Equal(t, 1, body.Transfers)
	require.Len(t, body.Path, 3)
	assert.Equal(t, "Times Sq", body.Path[0].Station)
	assert.Empty(t, body.Path[0].Line)
	assert.Equal(t, "Grand Central", body.Path[2].Station)
	assert.Equal(t, "2", body.Path[2].Line)
}

func TestRoute_TransferCostOverride(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{
		"from":          {"Times Sq"},
		"to":            {"Grand Central"},
		"transfer_cost": {"0"},
	}
	var body routeBody
	resp := get(t, ts, "/api/route?"+q.Encode(), &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), body.Cost)
}

func TestRoute_UnreachableIsStillOK(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{"from": {"Times Sq"}, "to": {"Atlantis"}}
	var body routeBody
	resp := get(t, ts, "/api/route?"+q.Encode(), &body)

	// "No path" is a result, not an HTTP error.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body.Reachable)
	assert.Equal(t, int64(-1), body.Cost)
	assert.Empty(t, body.Path)
}

func TestRoute_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	// Missing station names.
	resp := get(t, ts, "/api/route?from=Times+Sq", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Garbage transfer_cost.
	q := url.Values{"from": {"Times Sq"}, "to": {"Wall St"}, "transfer_cost": {"many"}}
	resp = get(t, ts, "/api/route?"+q.Encode(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Negative transfer_cost.
	q.Set("transfer_cost", "-3")
	resp = get(t, ts, "/api/route?"+q.Encode(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	var health map[string]string
	resp := get(t, ts, "/health", &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health["status"])

	resp = get(t, ts, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
