// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterRoutesDropsUndocumentedAndSorts(t *testing.T) {
	t.Parallel()

	table := loadRoutesFixture(t)
	got := routeKeys(FilterRoutes(table.Routes, RouteFilter{}))
	want := []string{"GET /users", "POST /users", "GET /users/{id}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRoutesCustomMethodsOrder(t *testing.T) {
	t.Parallel()

	routes := []Route{
		{Method: "get", Path: "/a"},
		{Method: "delete", Path: "/a"},
		{Method: "post", Path: "/a"},
		{Method: "connect", Path: "/a"},
	}

	got := routeKeys(FilterRoutes(routes, RouteFilter{MethodsOrder: []string{"post", "delete", "get"}}))
	want := []string{"CONNECT /a", "POST /a", "DELETE /a", "GET /a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRoutesPathAndInclude(t *testing.T) {
	t.Parallel()

	table := loadRoutesFixture(t)
	got := routeKeys(FilterRoutes(table.Routes, RouteFilter{Path: "/users"}))
	if diff := cmp.Diff([]string{"GET /users", "POST /users"}, got); diff != "" {
		t.Fatalf("path filter mismatch (-want +got):\n%s", diff)
	}

	got = routeKeys(FilterRoutes(table.Routes, RouteFilter{
		Include: func(route Route) bool { return route.Method == "post" },
	}))
	if diff := cmp.Diff([]string{"POST /users"}, got); diff != "" {
		t.Fatalf("include filter mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeRouteSections(t *testing.T) {
	t.Parallel()

	table := loadRoutesFixture(t)
	doc, err := DescribeRoute(table.Routes[0])
	if err != nil {
		t.Fatalf("DescribeRoute: %v", err)
	}

	if doc.Method != "GET" || doc.Path != "/users/{id}" {
		t.Fatalf("route identity = %s %s", doc.Method, doc.Path)
	}

	if diff := cmp.Diff([]any{"Cached for one minute."}, doc.Notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}

	if doc.BodyParams == nil || !doc.BodyParams.IsDenied || !doc.BodyParams.Root {
		t.Fatalf("body must be denied root: %+v", doc.BodyParams)
	}

	if doc.PathParams == nil || !doc.PathParams.Root || doc.PathParams.IsDenied {
		t.Fatalf("params must be a typed root: %+v", doc.PathParams)
	}

	if doc.ResponseParams != nil {
		t.Fatalf("response schema must be absent: %+v", doc.ResponseParams)
	}

	fields := doc.QueryParams.Children[0]
	if len(fields.Items) != 1 || len(fields.ForbiddenItems) != 1 {
		t.Fatalf("fields items = %+v forbidden = %+v", fields.Items, fields.ForbiddenItems)
	}

	limit := doc.QueryParams.Children[1]
	if diff := cmp.Diff([]string{"0"}, limit.DisallowedValues); diff != "" {
		t.Fatalf("disallowed values mismatch (-want +got):\n%s", diff)
	}

	wantRules := []DocRule{{Name: "Min", Params: 1}, {Name: "Max", Params: DocReference{Ref: "maxLimit"}}}
	if diff := cmp.Diff(wantRules, limit.Rules); diff != "" {
		t.Fatalf("limit rules mismatch (-want +got):\n%s", diff)
	}

	if len(doc.StatusSchema) != 2 || !doc.StatusSchema["200"].Root || doc.StatusSchema["404"] == nil {
		t.Fatalf("status schema = %+v", doc.StatusSchema)
	}
}

func TestDescribeRouteWrapsSectionError(t *testing.T) {
	t.Parallel()

	_, err := DescribeRoute(Route{
		Method: "get",
		Path:   "/broken",
		Response: RouteResponse{
			Status: map[string]*Description{"500": {Kind: "widget"}},
		},
	})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}

	assertContains(t, err.Error(), "status 500")
}

func TestDescribeRoutesKeepsInputOrder(t *testing.T) {
	t.Parallel()

	routes := make([]Route, 0, 32)
	for index := range 32 {
		routes = append(routes, Route{
			Method: "get",
			Path:   fmt.Sprintf("/items/%02d", index),
			Validate: RouteValidate{
				Query: &Description{Kind: KindObject, Children: Children{
					{Key: "page", Node: &Description{Kind: KindNumber}},
				}},
			},
		})
	}

	docs, err := DescribeRoutes(context.Background(), routes, 4)
	if err != nil {
		t.Fatalf("DescribeRoutes: %v", err)
	}

	if len(docs) != len(routes) {
		t.Fatalf("docs = %d, want %d", len(docs), len(routes))
	}

	for index, doc := range docs {
		if doc.Path != routes[index].Path {
			t.Fatalf("docs[%d].Path = %q, want %q", index, doc.Path, routes[index].Path)
		}
	}
}

func TestDescribeRoutesReportsFailingRoute(t *testing.T) {
	t.Parallel()

	routes := []Route{
		{Method: "get", Path: "/ok"},
		{Method: "post", Path: "/bad", Validate: RouteValidate{Body: &Description{}}},
	}

	_, err := DescribeRoutes(context.Background(), routes, 0)
	if !errors.Is(err, ErrDescribeRoute) || !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrDescribeRoute wrapping ErrUnknownKind", err)
	}

	assertContains(t, err.Error(), "POST /bad")
}

func TestDescribeRoutesCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DescribeRoutes(ctx, []Route{{Method: "get", Path: "/a"}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSortedStatusCodes(t *testing.T) {
	t.Parallel()

	got := sortedStatusCodes(map[string]int{"404": 0, "default": 0, "200": 0, "2xx": 0, "201": 0})
	if diff := cmp.Diff([]string{"200", "201", "404", "2xx", "default"}, got); diff != "" {
		t.Fatalf("status order mismatch (-want +got):\n%s", diff)
	}
}

func loadRoutesFixture(t *testing.T) RouteTable {
	t.Helper()

	table, err := LoadRoutesFile(routesFixturePath)
	if err != nil {
		t.Fatalf("LoadRoutesFile: %v", err)
	}

	return table
}

func routeKeys(routes []Route) []string {
	out := make([]string, 0, len(routes))
	for _, route := range routes {
		out = append(out, strings.ToUpper(route.Method)+" "+route.Path)
	}

	return out
}
