package router

import (
	"strings"

	"products-api/internal/handlers"
	"products-api/internal/models"
)

// Pattern decides whether a path belongs to a route and extracts its parameters
type Pattern interface {
	Match(path string) (map[string]string, bool)
	String() string
}

// exactPattern matches one literal path
type exactPattern string

// Exact returns a pattern matching path literally
func Exact(path string) Pattern {
	return exactPattern(path)
}

func (p exactPattern) Match(path string) (map[string]string, bool) {
	if path != string(p) {
		return nil, false
	}
	return nil, true
}

func (p exactPattern) String() string {
	return string(p)
}

// segmentPattern matches prefix followed by exactly one non-empty segment
type segmentPattern struct {
	prefix string
	param  string
}

// Segment returns a pattern matching prefix + "/{param}". The captured segment
// must be non-empty and contain no further slash.
func Segment(prefix, param string) Pattern {
	return segmentPattern{prefix: strings.TrimSuffix(prefix, "/") + "/", param: param}
}

func (p segmentPattern) Match(path string) (map[string]string, bool) {
	rest, ok := strings.CutPrefix(path, p.prefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return nil, false
	}
	return map[string]string{p.param: rest}, true
}

func (p segmentPattern) String() string {
	return p.prefix + "{" + p.param + "}"
}

// Route binds a path pattern to the handler serving every method on it
type Route struct {
	Name    string
	Pattern Pattern
	Handler handlers.Func
}

// Table is a list of routes evaluated in order; the first match wins
type Table []Route

// Match returns the first route whose pattern accepts path
func (t Table) Match(path string) (*Route, map[string]string, bool) {
	for i := range t {
		if params, ok := t[i].Pattern.Match(path); ok {
			return &t[i], params, true
		}
	}
	return nil, nil, false
}

// DefaultRoutes builds the routing table over the demo catalogs
func DefaultRoutes(legacyEchoStatus bool) Table {
	echoHandler := handlers.NewEchoHandler(legacyEchoStatus)
	productHandler := handlers.NewProductHandler(models.DefaultProducts())
	categoryHandler := handlers.NewCategoryHandler(models.DefaultCategories())

	return Table{
		{Name: "api", Pattern: Exact("/api"), Handler: echoHandler.Handle},
		{Name: "products", Pattern: Exact("/products"), Handler: productHandler.HandleCollection},
		{Name: "product", Pattern: Segment("/products", handlers.ProductIDParam), Handler: productHandler.HandleItem},
		{Name: "categories", Pattern: Exact("/categories"), Handler: categoryHandler.Handle},
	}
}
