package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Reply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Message  string `json:"message"`
			Language string `json:"language"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "how do I recycle a battery?", body.Message)
		assert.Equal(t, "en", body.Language)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"Drop it at any collection bin."}`))
	}))
	defer server.Close()

	client := New(server.URL)

	reply, err := client.Reply(context.Background(), "how do I recycle a battery?", "en")
	require.NoError(t, err)
	assert.Equal(t, "Drop it at any collection bin.", reply)
}

func TestClient_Reply_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL)

	_, err := client.Reply(context.Background(), "hello", "en")
	require.Error(t, err)
}

func TestCanned_Reply(t *testing.T) {
	t.Run("default answer", func(t *testing.T) {
		canned := &Canned{}
		reply, err := canned.Reply(context.Background(), "anything", "en")
		require.NoError(t, err)
		assert.NotEmpty(t, reply)
	})

	t.Run("custom answer", func(t *testing.T) {
		canned := &Canned{Answer: "custom"}
		reply, err := canned.Reply(context.Background(), "anything", "tl")
		require.NoError(t, err)
		assert.Equal(t, "custom", reply)
	})
}
