package objectstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)

	key := Key("exports", "flight-log-2025-06.xlsx", now)
	assert.True(t, strings.HasPrefix(key, "exports/2025/06/01/"), key)
	assert.True(t, strings.HasSuffix(key, "/flight-log-2025-06.xlsx"), key)
	assert.NotEqual(t, key, Key("exports", "flight-log-2025-06.xlsx", now))

	assert.True(t, strings.HasPrefix(Key("", "a.xlsx", now), "2025/06/01/"))
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, ErrNoBucket)
}

func TestS3_Put(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		target string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		method, target = r.Method, r.URL.Path
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := New(context.Background(), Config{
		Bucket:       "logs",
		Region:       "us-east-1",
		Endpoint:     srv.URL,
		AccessKey:    "minio",
		SecretKey:    "minio-secret",
		Prefix:       "exports",
		UsePathStyle: true,
		PresignTTL:   time.Minute,
	})
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "flight-log.xlsx", "application/octet-stream", []byte("PK"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.True(t, strings.HasPrefix(target, "/logs/exports/"), target)
	assert.True(t, strings.HasSuffix(target, "/flight-log.xlsx"), target)

	assert.True(t, strings.HasPrefix(url, srv.URL+target), url)
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=60")
}
