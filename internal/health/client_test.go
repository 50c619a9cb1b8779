package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Query(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthy", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/unhealthy", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Failed to validate"}` + "\n"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient()
	ctx := context.Background()

	err := client.Query(ctx, server.URL+"/healthy")
	require.NoError(t, err)

	err = client.Query(ctx, server.URL+"/unhealthy")
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.EqualError(t, err, `program is unhealthy: 503 Service Unavailable: `+
		`{"error":"Failed to validate"}`)
}

func Test_MakeURL(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		listeningAddress string
		rootURL          string
		url              string
	}{
		"port_only": {
			listeningAddress: ":8000",
			rootURL:          "/",
			url:              "http://127.0.0.1:8000/api/v1/health",
		},
		"host_and_root": {
			listeningAddress: "localhost:9000",
			rootURL:          "/sms/",
			url:              "http://localhost:9000/sms/api/v1/health",
		},
		"unspecified_host": {
			listeningAddress: "0.0.0.0:8000",
			rootURL:          "/",
			url:              "http://127.0.0.1:8000/api/v1/health",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.url, MakeURL(testCase.listeningAddress, testCase.rootURL))
		})
	}
}

func Test_IsClientMode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsClientMode([]string{"smsglobal", "healthcheck"}))
	assert.False(t, IsClientMode([]string{"smsglobal"}))
}
