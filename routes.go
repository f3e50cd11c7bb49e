// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultMethodsOrder sorts routes sharing one path.
var DefaultMethodsOrder = []string{"get", "head", "post", "put", "patch", "delete", "trace", "options"}

// RouteTable is a documented server route table.
type RouteTable struct {
	Host   string  `json:"host,omitempty" yaml:"host,omitempty"`
	Routes []Route `json:"routes" yaml:"routes"`
}

// Route is one server route with the schema descriptions of its validated sections.
type Route struct {
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       any      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Vhost       any      `json:"vhost,omitempty" yaml:"vhost,omitempty"`
	CORS        any      `json:"cors,omitempty" yaml:"cors,omitempty"`
	JSONP       string   `json:"jsonp,omitempty" yaml:"jsonp,omitempty"`

	// Internal routes are never documented.
	Internal bool `json:"internal,omitempty" yaml:"internal,omitempty"`
	// Hidden routes opt out of documentation.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty"`

	Validate RouteValidate `json:"validate,omitempty" yaml:"validate,omitempty"`
	Response RouteResponse `json:"response,omitempty" yaml:"response,omitempty"`
}

// RouteValidate holds request section descriptions.
type RouteValidate struct {
	Params *Description `json:"params,omitempty" yaml:"params,omitempty"`
	Query  *Description `json:"query,omitempty" yaml:"query,omitempty"`
	Body   *Description `json:"body,omitempty" yaml:"body,omitempty"`
}

// RouteResponse holds response descriptions, the default one and per status code.
type RouteResponse struct {
	Schema *Description            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Status map[string]*Description `json:"status,omitempty" yaml:"status,omitempty"`
}

// RouteDoc is the documentation data of one route.
type RouteDoc struct {
	Path           string              `json:"path" yaml:"path"`
	Method         string              `json:"method" yaml:"method"`
	Description    string              `json:"description,omitempty" yaml:"description,omitempty"`
	Notes          []any               `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags           []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Vhost          any                 `json:"vhost,omitempty" yaml:"vhost,omitempty"`
	CORS           any                 `json:"cors,omitempty" yaml:"cors,omitempty"`
	JSONP          string              `json:"jsonp,omitempty" yaml:"jsonp,omitempty"`
	PathParams     *DocNode            `json:"pathParams,omitempty" yaml:"pathParams,omitempty"`
	QueryParams    *DocNode            `json:"queryParams,omitempty" yaml:"queryParams,omitempty"`
	BodyParams     *DocNode            `json:"bodyParams,omitempty" yaml:"bodyParams,omitempty"`
	ResponseParams *DocNode            `json:"responseParams,omitempty" yaml:"responseParams,omitempty"`
	StatusSchema   map[string]*DocNode `json:"statusSchema,omitempty" yaml:"statusSchema,omitempty"`
}

// RouteFilter selects and orders documented routes.
type RouteFilter struct {
	// Path keeps only routes with exactly this path when set.
	Path string
	// MethodsOrder orders routes sharing a path; DefaultMethodsOrder when empty.
	MethodsOrder []string
	// Include drops routes it returns false for.
	Include func(Route) bool
}

// DescribeRoute normalizes every validated section of route.
func DescribeRoute(route Route) (RouteDoc, error) {
	doc := RouteDoc{
		Path:        route.Path,
		Method:      strings.ToUpper(route.Method),
		Description: route.Description,
		Notes:       processNotes(route.Notes),
		Tags:        slices.Clone(route.Tags),
		Vhost:       route.Vhost,
		CORS:        route.CORS,
		JSONP:       route.JSONP,
	}

	sections := []struct {
		name string
		in   *Description
		out  **DocNode
	}{
		{name: "params", in: route.Validate.Params, out: &doc.PathParams},
		{name: "query", in: route.Validate.Query, out: &doc.QueryParams},
		{name: "body", in: route.Validate.Body, out: &doc.BodyParams},
		{name: "response", in: route.Response.Schema, out: &doc.ResponseParams},
	}

	for _, section := range sections {
		node, err := Describe(section.in)
		if err != nil {
			return RouteDoc{}, fmt.Errorf("%s: %w", section.name, err)
		}

		*section.out = node
	}

	status, err := DescribeStatusSchema(route.Response.Status)
	if err != nil {
		return RouteDoc{}, fmt.Errorf("response %w", err)
	}

	doc.StatusSchema = status
	return doc, nil
}

// DescribeRoutes describes routes concurrently with at most jobs workers.
// Result order matches input order; the first failure cancels pending work.
func DescribeRoutes(ctx context.Context, routes []Route, jobs int) ([]RouteDoc, error) {
	out := make([]RouteDoc, len(routes))
	if len(routes) == 0 {
		return out, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(routes)))

	for index, route := range routes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := DescribeRoute(route)
			if err != nil {
				return fmt.Errorf("%w %s %s: %w", ErrDescribeRoute, strings.ToUpper(route.Method), route.Path, err)
			}

			out[index] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// FilterRoutes drops undocumented routes and sorts the rest by path and method.
func FilterRoutes(routes []Route, filter RouteFilter) []Route {
	order := filter.MethodsOrder
	if len(order) == 0 {
		order = DefaultMethodsOrder
	}

	out := make([]Route, 0, len(routes))
	for _, route := range routes {
		if route.Internal || route.Hidden {
			continue
		}

		if strings.EqualFold(route.Method, "options") {
			continue
		}

		if filter.Path != "" && route.Path != filter.Path {
			continue
		}

		if filter.Include != nil && !filter.Include(route) {
			continue
		}

		out = append(out, route)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}

		return methodRank(order, out[i].Method) < methodRank(order, out[j].Method)
	})

	return out
}

// methodRank returns method position in order; unknown methods rank first.
func methodRank(order []string, method string) int {
	for index, candidate := range order {
		if strings.EqualFold(candidate, method) {
			return index
		}
	}

	return -1
}

// sortedStatusCodes orders numeric status codes ascending, then other keys lexically.
func sortedStatusCodes[V any](status map[string]V) []string {
	codes := make([]string, 0, len(status))
	for code := range status {
		codes = append(codes, code)
	}

	sort.Slice(codes, func(i, j int) bool {
		left, leftErr := strconv.Atoi(codes[i])
		right, rightErr := strconv.Atoi(codes[j])
		switch {
		case leftErr == nil && rightErr == nil:
			return left < right
		case leftErr == nil:
			return true
		case rightErr == nil:
			return false
		default:
			return codes[i] < codes[j]
		}
	})

	return codes
}
