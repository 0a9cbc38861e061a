package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushEntry_Success(t *testing.T) {
	var gotBody []byte
	var gotContentType, gotDeliveryID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotDeliveryID = r.Header.Get("X-Delivery-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	e := testutil.NewTestEntry("Alice", testutil.WithBreak(30))
	payload := NewEntryPayload(e, 112.5, 15)

	client := NewClient()
	require.NoError(t, client.PushEntry(context.Background(), server.URL, payload))

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotDeliveryID)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "Alice", decoded["name"])
	assert.Equal(t, "staff", decoded["category"])
	assert.Equal(t, "09:00", decoded["clockIn"])
	assert.Equal(t, "17:00", decoded["clockOut"])
	assert.EqualValues(t, 30, decoded["breakTime"])
	assert.EqualValues(t, 7.5, decoded["totalHours"])
	assert.EqualValues(t, 112.5, decoded["calculatedCost"])
	assert.EqualValues(t, 15, decoded["wageRate"])
}

func TestPushEntry_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient()
	err := client.PushEntry(context.Background(), server.URL, EntryPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestPushEntry_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before use

	client := NewClient()
	err := client.PushEntry(context.Background(), server.URL, EntryPayload{})
	assert.Error(t, err)
}

func TestPushEntry_NoEndpoint(t *testing.T) {
	client := NewClient()
	err := client.PushEntry(context.Background(), "", EntryPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no webhook endpoint")
}

func TestPushTest_SendsDiagnosticPayload(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient()
	require.NoError(t, client.PushTest(context.Background(), server.URL))

	var decoded TestPayload
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.True(t, decoded.Test)
	assert.Equal(t, "tempus connection test", decoded.Message)
	assert.NotEmpty(t, decoded.Timestamp)
}

func TestNewEntryPayload_ActiveEntryOmitsClockOut(t *testing.T) {
	e := testutil.NewTestEntry("Bob", testutil.StillActive())
	payload := NewEntryPayload(e, 0, 15)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "clockOut")
}
