package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAssetStore_Read(t *testing.T) {
	s := NewFileAssetStoreFS(fstest.MapFS{
		"acme/faq.txt":    {Data: []byte("Check-in is at 3pm.\n")},
		"acme/events.txt": {Data: []byte("Jazz on Friday.\n")},
	})

	faq, err := s.Read(context.Background(), "acme", domain.AssetFAQ)
	require.NoError(t, err)
	assert.Equal(t, "Check-in is at 3pm.\n", faq)

	events, err := s.Read(context.Background(), "acme", domain.AssetEvents)
	require.NoError(t, err)
	assert.Equal(t, "Jazz on Friday.\n", events)
}

func TestFileAssetStore_Missing(t *testing.T) {
	s := NewFileAssetStoreFS(fstest.MapFS{
		"acme/faq.txt": {Data: []byte("faq")},
	})

	_, err := s.Read(context.Background(), "acme", domain.AssetEvents)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
}

func TestFileAssetStore_RejectsEscapingPaths(t *testing.T) {
	s := NewFileAssetStoreFS(fstest.MapFS{})

	for _, p := range []string{"../secrets", "/etc"} {
		_, err := s.Read(context.Background(), p, domain.AssetFAQ)
		assert.ErrorIs(t, err, domain.ErrAssetUnavailable, p)
	}
}

func TestFileAssetStore_EmptyPathReadsRoot(t *testing.T) {
	s := NewFileAssetStoreFS(fstest.MapFS{
		"faq.txt": {Data: []byte("root faq")},
	})

	faq, err := s.Read(context.Background(), "", domain.AssetFAQ)
	require.NoError(t, err)
	assert.Equal(t, "root faq", faq)
}

func TestObjectKey(t *testing.T) {
	cases := map[string]struct {
		prefix, assetPath, want string
	}{
		"with prefix":   {"tenants", "acme", "tenants/acme/faq.txt"},
		"no prefix":     {"", "acme", "acme/faq.txt"},
		"rooted prefix": {"/tenants", "acme", "tenants/acme/faq.txt"},
		"empty path":    {"", "", "faq.txt"},
		"nested path":   {"tenants", "acme/east", "tenants/acme/east/faq.txt"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			key, err := objectKey(tc.prefix, tc.assetPath, domain.AssetFAQ)
			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
		})
	}
}

func TestObjectKey_RejectsEscapingPaths(t *testing.T) {
	for _, p := range []string{"../other", "acme/../../other", "/acme"} {
		_, err := objectKey("tenants", p, domain.AssetFAQ)
		assert.ErrorIs(t, err, domain.ErrAssetUnavailable, p)
	}
}

// newStubMinIOStore points a store at an S3 stub serving objects from the
// given map, keyed by "<bucket>/<key>". Anything else is NoSuchKey.
func newStubMinIOStore(t *testing.T, prefix string, objects map[string]string) *MinIOAssetStore {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := objects[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok || r.Method != http.MethodGet {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("ETag", `"stub"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	return &MinIOAssetStore{client: client, bucket: "guestchat", prefix: prefix}
}

func TestMinIOAssetStore_Read(t *testing.T) {
	s := newStubMinIOStore(t, "tenants", map[string]string{
		"guestchat/tenants/acme/faq.txt": "Pool opens at 8.",
	})

	faq, err := s.Read(context.Background(), "acme", domain.AssetFAQ)
	require.NoError(t, err)
	assert.Equal(t, "Pool opens at 8.", faq)
}

func TestMinIOAssetStore_MissingObject(t *testing.T) {
	s := newStubMinIOStore(t, "tenants", map[string]string{})

	_, err := s.Read(context.Background(), "acme", domain.AssetEvents)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
	assert.ErrorContains(t, err, "tenants/acme/events.txt")
}

func TestMinIOAssetStore_RejectsEscapingPaths(t *testing.T) {
	s := newStubMinIOStore(t, "tenants", map[string]string{
		"guestchat/secrets/faq.txt": "leaked",
	})

	_, err := s.Read(context.Background(), "../secrets", domain.AssetFAQ)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
}
