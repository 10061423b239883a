package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncQueue(t *testing.T) {
	var received []map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dispatch/emergency", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received = append(received, body)

		if body["severity_level"] == float64(9) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	queue := []queuedEmergency{
		{Symptoms: []string{"chest pain"}, SeverityLevel: 4, Location: &queuedLocation{Latitude: 13.08, Longitude: 80.27}},
		{Symptoms: []string{"cough"}, SeverityLevel: 9},
		{Symptoms: []string{"fainting"}, SeverityLevel: 5, Address: "Adyar"},
	}

	remaining, result := syncQueue(ts.Client(), ts.URL+"/", queue)
	assert.Equal(t, syncResult{Synced: 2, Failed: 1}, result)
	require.Len(t, remaining, 1)
	assert.Equal(t, []string{"cough"}, remaining[0].Symptoms)

	require.Len(t, received, 3)
	assert.Equal(t, "Adyar", received[2]["address"])
	assert.NotContains(t, received[2], "location")
	assert.NotContains(t, received[0], "queued_at")
}

func TestSyncQueueServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	queue := []queuedEmergency{{Symptoms: []string{"cough"}, SeverityLevel: 1}}
	remaining, result := syncQueue(ts.Client(), url, queue)
	assert.Equal(t, syncResult{Failed: 1}, result)
	assert.Equal(t, queue, remaining)
}

func TestSyncCommandKeepsFailedRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	path := filepath.Join(tempDir(t), "queue.yaml")
	_, err := appendQueue(path, queuedEmergency{Symptoms: []string{"fracture"}, SeverityLevel: 3})
	require.NoError(t, err)

	cmd := newSyncCmd()
	cmd.SetArgs([]string{"--queue", path, "--server", ts.URL})
	require.NoError(t, cmd.Execute())

	queue, err := loadQueue(path)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, []string{"fracture"}, queue[0].Symptoms)
}
