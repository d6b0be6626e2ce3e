package routing

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

// Router owns the per-path tables and their echo routes.
type Router struct {
	echo   *echo.Echo
	tables map[string]*Table
}

// New returns a Router that registers its routes on e.
func New(e *echo.Echo) *Router {
	return &Router{
		echo:   e,
		tables: make(map[string]*Table),
	}
}

// Root is the unguarded scope at "/".
func (r *Router) Root() *Scope {
	return &Scope{router: r, prefix: "/"}
}

// Scope is shorthand for r.Root().Scope(prefix, guards...).
func (r *Router) Scope(prefix string, guards ...Guard) *Scope {
	return r.Root().Scope(prefix, guards...)
}

// Table returns the table registered for a full path.
func (r *Router) Table(path string) (*Table, bool) {
	t, ok := r.tables[path]
	return t, ok
}

// Paths lists every registered full path, sorted.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.tables))
	for p := range r.tables {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

func (r *Router) register(path string, c Candidate) {
	t, ok := r.tables[path]
	if !ok {
		t = NewTable(path)
		r.tables[path] = t
		r.echo.Any(path, t.Handle)
	}
	t.Add(c)
}

// Scope groups routes under a path prefix and a set of guards.
type Scope struct {
	router *Router
	prefix string
	guards []Guard
}

// Scope creates a child scope. The prefix is joined to the parent's and the
// guards are appended to the parent's.
func (s *Scope) Scope(prefix string, guards ...Guard) *Scope {
	return &Scope{
		router: s.router,
		prefix: joinPath(s.prefix, prefix),
		guards: slices.Concat(s.guards, guards),
	}
}

// Prefix is the scope's full path prefix.
func (s *Scope) Prefix() string {
	return s.prefix
}

// Configure applies reusable route sets to the scope.
func (s *Scope) Configure(fns ...func(*Scope)) *Scope {
	for _, fn := range fns {
		fn(s)
	}
	return s
}

// Route registers h for method at path relative to the scope. An empty
// method matches any method.
func (s *Scope) Route(method, path, name string, h echo.HandlerFunc) {
	s.router.register(joinPath(s.prefix, path), Candidate{
		Name:    name,
		Method:  method,
		Guards:  slices.Clone(s.guards),
		Handler: h,
	})
}

// GET registers h for GET requests at path.
func (s *Scope) GET(path, name string, h echo.HandlerFunc) {
	s.Route(http.MethodGet, path, name, h)
}

// POST registers h for POST requests at path.
func (s *Scope) POST(path, name string, h echo.HandlerFunc) {
	s.Route(http.MethodPost, path, name, h)
}

// HEAD registers h for HEAD requests at path.
func (s *Scope) HEAD(path, name string, h echo.HandlerFunc) {
	s.Route(http.MethodHead, path, name, h)
}

// To registers h for any method.
func (s *Scope) To(path, name string, h echo.HandlerFunc) {
	s.Route("", path, name, h)
}

func joinPath(prefix, path string) string {
	if path == "" {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}
