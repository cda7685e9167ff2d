package inference

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocycle/server/core"
)

func TestClient_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/e-waste-test/1", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "laptop.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Laptop",
			"type": "Electronics",
			"condition": "Used",
			"estimatedValue": 120,
			"recyclableComponents": ["Battery", "Screen"],
			"environmentalImpact": "High"
		}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "e-waste-test/1")

	detection, err := client.Classify(context.Background(), []byte("image-bytes"), "laptop.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", detection.Name)
	assert.Equal(t, 120, detection.EstimatedValue)
	assert.Equal(t, []string{"Battery", "Screen"}, detection.RecyclableComponents)
}

func TestClient_Classify_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "e-waste-test/1")

	_, err := client.Classify(context.Background(), []byte("image-bytes"), "blur.jpg")
	require.ErrorIs(t, err, core.ErrNoItemDetected)
}

func TestClient_Classify_EmptyDetection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "e-waste-test/1")

	_, err := client.Classify(context.Background(), []byte("image-bytes"), "blank.jpg")
	require.ErrorIs(t, err, core.ErrNoItemDetected)
}

func TestClient_Classify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, "test-key", "e-waste-test/1")

	_, err := client.Classify(context.Background(), []byte("image-bytes"), "laptop.jpg")
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNoItemDetected)
}

func TestStatic_Classify(t *testing.T) {
	t.Run("default detection", func(t *testing.T) {
		static := &Static{}
		detection, err := static.Classify(context.Background(), []byte("x"), "any.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Smartphone", detection.Name)
	})

	t.Run("override detection", func(t *testing.T) {
		static := &Static{Detection: &core.Detection{Name: "Monitor"}}
		detection, err := static.Classify(context.Background(), []byte("x"), "any.jpg")
		require.NoError(t, err)
		assert.Equal(t, "Monitor", detection.Name)
	})

	t.Run("empty image", func(t *testing.T) {
		static := &Static{}
		_, err := static.Classify(context.Background(), nil, "any.jpg")
		require.ErrorIs(t, err, core.ErrNoItemDetected)
	})

	t.Run("forced failure", func(t *testing.T) {
		static := &Static{Fail: true}
		_, err := static.Classify(context.Background(), []byte("x"), "any.jpg")
		require.ErrorIs(t, err, core.ErrNoItemDetected)
	})
}
