package routing

import (
	"net/http"
	"slices"
	"sort"

	"github.com/labstack/echo/v4"
	apperrors "github.com/pscheid92/scopedemo/internal/platform/errors"
)

// ContextKeyRoute is the echo context key holding the matched candidate's name.
const ContextKeyRoute = "route_name"

// Candidate is one (method, guards, handler) entry for a path.
type Candidate struct {
	Name    string
	Method  string // empty matches any method
	Guards  []Guard
	Handler echo.HandlerFunc
}

// Specificity is the number of guards. Higher is tried first.
func (c Candidate) Specificity() int {
	return len(c.Guards)
}

// Matches reports whether r has the candidate's method (if set) and passes
// every guard.
func (c Candidate) Matches(r *http.Request) bool {
	if c.Method != "" && c.Method != r.Method {
		return false
	}
	return allMatch(c.Guards, r)
}

// Table holds the candidates for a single path in evaluation order.
// It is filled during setup and only read afterwards.
type Table struct {
	path       string
	candidates []Candidate
}

// NewTable returns an empty table for path.
func NewTable(path string) *Table {
	return &Table{path: path}
}

// Path is the full path the table serves.
func (t *Table) Path() string {
	return t.path
}

// Add inserts c after every candidate at least as specific as it.
func (t *Table) Add(c Candidate) {
	i := sort.Search(len(t.candidates), func(i int) bool {
		return t.candidates[i].Specificity() < c.Specificity()
	})
	t.candidates = slices.Insert(t.candidates, i, c)
}

// Candidates returns a copy of the candidates in evaluation order.
func (t *Table) Candidates() []Candidate {
	return slices.Clone(t.candidates)
}

// Match returns the first candidate accepting r.
func (t *Table) Match(r *http.Request) (Candidate, bool) {
	for _, c := range t.candidates {
		if c.Matches(r) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Handle dispatches to the matching candidate. With no match it fails with a
// not_found error carrying the table's path.
func (t *Table) Handle(c echo.Context) error {
	cand, ok := t.Match(c.Request())
	if !ok {
		return apperrors.NotFoundError(http.StatusText(http.StatusNotFound)).WithContext("path", t.path)
	}
	c.Set(ContextKeyRoute, cand.Name)
	return cand.Handler(c)
}
