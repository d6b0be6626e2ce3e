package httpserver

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicSurface(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		host       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"hello", http.MethodGet, "/", "", "", http.StatusOK, "Hello world!"},
		{"hey", http.MethodGet, "/hey", "", "", http.StatusOK, "Hey there!"},
		{"show users", http.MethodGet, "/users/show", "", "", http.StatusOK, "List of users..."},
		{"echo", http.MethodPost, "/echo", "", "abc", http.StatusOK, "abc"},
		{"echo empty", http.MethodPost, "/echo", "", "", http.StatusOK, ""},
		{"www host", http.MethodGet, "/", "www.rust-lang.org", "", http.StatusOK, "www"},
		{"users host", http.MethodGet, "/", "users.rust-lang.org", "", http.StatusOK, "user"},
		{"www host any method", http.MethodDelete, "/", "www.rust-lang.org", "", http.StatusOK, "www"},
		{"other host falls back", http.MethodGet, "/", "example.com", "", http.StatusOK, "Hello world!"},
		{"host match is case-sensitive", http.MethodGet, "/", "WWW.rust-lang.org", "", http.StatusOK, "Hello world!"},
		{"app", http.MethodGet, "/app", "", "", http.StatusOK, "app"},
		{"app head", http.MethodHead, "/app", "", "", http.StatusMethodNotAllowed, ""},
		{"scoped test on www", http.MethodGet, "/test", "www.rust-lang.org", "", http.StatusOK, "test"},
		{"scoped test head on www", http.MethodHead, "/test", "www.rust-lang.org", "", http.StatusMethodNotAllowed, ""},
		{"scoped test elsewhere", http.MethodGet, "/test", "users.rust-lang.org", "", http.StatusNotFound, ""},
		{"undefined path", http.MethodGet, "/undefined", "", "", http.StatusNotFound, ""},
		{"wrong method", http.MethodGet, "/echo", "", "", http.StatusNotFound, ""},
		{"post to hey", http.MethodPost, "/hey", "", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			rec := do(t, srv, tt.method, tt.target, tt.host, strings.NewReader(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "text/plain; charset=UTF-8", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestNotFound_JSONBody(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/undefined", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found","type":"not_found"}`, rec.Body.String())
}

func TestNotFound_KnownPathWrongMethodCarriesPath(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/echo", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found","type":"not_found","context":{"path":"/echo"}}`, rec.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(srv.httpMetrics.ErrorsTotal.WithLabelValues("not_found")), 0)
}

func TestIndex_SequentialRequests(t *testing.T) {
	srv := newTestServer(t)

	first := do(t, srv, http.MethodGet, "/app/index.html", "", nil)
	second := do(t, srv, http.MethodGet, "/app/index.html", "", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "Hi Echo Web!\n\tRequest number: 1", first.Body.String())
	assert.Equal(t, "Hi Echo Web!\n\tRequest number: 2", second.Body.String())
}

func TestIndex_UsesConfiguredIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.AppName = "Actix Web"
	srv := newTestServerWithConfig(t, cfg)

	rec := do(t, srv, http.MethodGet, "/app/index.html", "", nil)

	assert.Equal(t, "Hi Actix Web!\n\tRequest number: 1", rec.Body.String())
}

func TestIndex_OtherRoutesDoNotCount(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodGet, "/", "", nil)
	do(t, srv, http.MethodGet, "/hey", "", nil)
	do(t, srv, http.MethodGet, "/undefined", "", nil)

	rec := do(t, srv, http.MethodGet, "/app/index.html", "", nil)
	assert.True(t, strings.HasSuffix(rec.Body.String(), "Request number: 1"))
}

func TestIndex_ConcurrentRequests(t *testing.T) {
	const n = 200
	srv := newTestServer(t)

	values := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := do(t, srv, http.MethodGet, "/app/index.html", "", nil)
			var v int
			_, err := fmt.Sscanf(rec.Body.String(), "Hi Echo Web!\n\tRequest number: %d", &v)
			if err == nil {
				values[i] = v
			}
		}()
	}
	wg.Wait()

	slices.Sort(values)
	for i, v := range values {
		assert.Equal(t, i+1, v, "counter values must be exactly 1..N")
	}
	assert.Equal(t, int64(n), srv.counter.Value())
}

func TestEcho_BodyLimit(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/echo", "", strings.NewReader(strings.Repeat("a", 2048)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"validation"`)
}

func TestCustomHosts(t *testing.T) {
	cfg := testConfig()
	cfg.WWWHost = "www.example.com"
	cfg.UsersHost = "users.example.com"
	srv := newTestServerWithConfig(t, cfg)

	assert.Equal(t, "www", do(t, srv, http.MethodGet, "/", "www.example.com", nil).Body.String())
	assert.Equal(t, "user", do(t, srv, http.MethodGet, "/", "users.example.com", nil).Body.String())
	assert.Equal(t, "Hello world!", do(t, srv, http.MethodGet, "/", "www.rust-lang.org", nil).Body.String())
}

func TestRootTable_Precedence(t *testing.T) {
	srv := newTestServer(t)

	table, ok := srv.router.Table("/")
	require.True(t, ok)

	var names []string
	for _, c := range table.Candidates() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"www", "user", "hello"}, names)
}
