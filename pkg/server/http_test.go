package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcbeltman/nocache-server/pkg/manager"
)

var noCacheValues = map[string]string{
	"Cache-Control":               "no-store, no-cache, must-revalidate, max-age=0",
	"Pragma":                      "no-cache",
	"Expires":                     "0",
	"Access-Control-Allow-Origin": "*",
}

const indexBody = "<html><body>hello</body></html>"

func newTestRouter(t *testing.T, out io.Writer) http.Handler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexBody), 0644))
	mgr, err := manager.New(dir)
	require.NoError(t, err)
	s := &DevServer{Manager: mgr}
	return s.router(out)
}

func TestNoCacheHeadersOnEveryResponse(t *testing.T) {
	t.Parallel()

	testMatrix := map[string]struct {
		method string
		target string
	}{
		"existing file":  {method: http.MethodGet, target: "/index.html"},
		"directory root": {method: http.MethodGet, target: "/"},
		"missing file":   {method: http.MethodGet, target: "/does-not-exist.txt"},
		"head":           {method: http.MethodHead, target: "/index.html"},
		"post":           {method: http.MethodPost, target: "/index.html"},
	}

	router := newTestRouter(t, io.Discard)
	for name, test := range testMatrix {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(test.method, test.target, nil))
			for header, value := range noCacheValues {
				assert.Equal(t, value, rec.Header().Get(header), "header %s", header)
			}
		})
	}
}

func TestServesFileBytes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, io.Discard)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, indexBody, rec.Body.String())
}

func TestMissingFileIs404WithHeaders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, io.Discard)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist.txt", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	for header, value := range noCacheValues {
		assert.Equal(t, value, rec.Header().Get(header))
	}
}

func TestRequestLogging(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	router := newTestRouter(t, &out)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/index.html?v=1", nil))
	assert.Equal(t, "Request: /index.html?v=1\n", out.String())

	out.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodHead, "/index.html", nil))
	assert.Empty(t, out.String(), "only GET requests are logged")
}

func TestOneLogLinePerRequest(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	router := newTestRouter(t, &out)
	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/index.html", nil))
	}
	assert.Equal(t, 3, strings.Count(out.String(), "Request: /index.html\n"))
}
