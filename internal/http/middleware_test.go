package httpx

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitor(t *testing.T) {
	t.Parallel()

	var seen string
	h := Visitor(VisitorConfig{Secure: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = VisitorIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("issues a cookie to new visitors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		c := visitorCookie(t, rec)
		_, err := uuid.Parse(c.Value)
		require.NoError(t, err)
		assert.Equal(t, c.Value, seen)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("reuses a valid cookie", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: id})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, id, seen)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("replaces a malformed cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "not-a-uuid"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		c := visitorCookie(t, rec)
		assert.NotEqual(t, "not-a-uuid", c.Value)
		assert.Equal(t, c.Value, seen)
	})

	t.Run("skips static assets", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/styles.css", nil))

		assert.Empty(t, rec.Result().Cookies())
		assert.Empty(t, seen)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	h := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "boom")
	assert.Contains(t, logs.String(), "/explode")
}

func TestLogging(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/brew", nil))

	out := logs.String()
	assert.True(t, ContainsAll(out, []string{`"method":"POST"`, `"path":"/brew"`, `"status":418`, `"bytes":15`}), out)
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestCompression(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("<p>local jobs</p>", 200)
	serve := func(contentType, body string, status int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			w.WriteHeader(status)
			if body != "" {
				_, _ = io.WriteString(w, body)
			}
		})
	}

	tests := []struct {
		name           string
		cfg            CompressionConfig
		acceptEncoding string
		method         string
		contentType    string
		body           string
		status         int
		wantGzip       bool
	}{
		{name: "html is compressed", acceptEncoding: "gzip, deflate", contentType: "text/html; charset=utf-8", body: big, status: http.StatusOK, wantGzip: true},
		{name: "json is compressed", acceptEncoding: "br;q=1.0, gzip;q=0.8", contentType: "application/json", body: big, status: http.StatusOK, wantGzip: true},
		{name: "client without gzip", acceptEncoding: "br", contentType: "text/html", body: big, status: http.StatusOK},
		{name: "gzip disabled with q=0", acceptEncoding: "gzip;q=0", contentType: "text/html", body: big, status: http.StatusOK},
		{name: "images pass through", acceptEncoding: "gzip", contentType: "image/png", body: big, status: http.StatusOK},
		{name: "no content", acceptEncoding: "gzip", contentType: "text/html", status: http.StatusNoContent},
		{name: "head request", acceptEncoding: "gzip", method: http.MethodHead, contentType: "text/html", status: http.StatusOK},
		{name: "small body under min size", cfg: CompressionConfig{MinSize: 1024}, acceptEncoding: "gzip", contentType: "text/plain", body: "tiny", status: http.StatusOK},
		{name: "large body over min size", cfg: CompressionConfig{MinSize: 1024}, acceptEncoding: "gzip", contentType: "text/plain", body: big, status: http.StatusOK, wantGzip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := tt.cfg
			cfg.Logger = discardLogger()
			h := Compression(cfg)(serve(tt.contentType, tt.body, tt.status))

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, "/", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			if method != http.MethodHead {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestAcceptsGzip(t *testing.T) {
	t.Parallel()
	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("deflate, GZIP;q=0.5"))
	assert.False(t, acceptsGzip(""))
	assert.False(t, acceptsGzip("identity"))
	assert.False(t, acceptsGzip("gzip; q=0.000"))
}
