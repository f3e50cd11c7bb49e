// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var routesFixturePath = filepath.Join("testdata", "routes.fixture.yaml")

func TestRenderListTemplateFixture(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	assertContains(t, rendered, "# API reference\n")
	assertContains(t, rendered, "Host: `api.example.test`")
	assertContains(t, rendered, "Source: `"+routesFixturePath+"`")
	assertContains(t, rendered, "* [GET /users/{id}](#get-usersid)")

	assertContains(t, rendered, "## GET /users/{id}")
	assertContains(t, rendered, "Fetch one user by identifier.")
	assertContains(t, rendered, "* Note: Cached for one minute.")
	assertContains(t, rendered, "* Tags: `users`")

	assertContains(t, rendered, "### Path parameters")
	assertContains(t, rendered, "* `id` (`string`, required): User identifier.\n  * Rules: Guid")

	assertContains(t, rendered, "### Query parameters")
	assertContains(t, rendered, "* `fields` (`array`): Fields to include.")
	assertContains(t, rendered, "  * item (`string`)\n    * Allowed values: `\"name\"`, `\"email\"`, `\"role\"`")
	assertContains(t, rendered, "  * forbidden item (`string`)\n    * Forbidden: yes")
	assertContains(t, rendered, "  * Default: `10`")
	assertContains(t, rendered, "  * Disallowed values: `0`")
	assertContains(t, rendered, "  * Rules: Min `1`, Max ref `maxLimit`")

	assertContains(t, rendered, "### Payload\n\nValidation forbids any value for this section.")
	assertContains(t, rendered, "### Response 200")
	assertContains(t, rendered, "* Unknown keys: rejected")
	assertContains(t, rendered, "  * Examples: `\"Alice\"`")
	assertContains(t, rendered, "### Response 404")
	assertNotContains(t, rendered, "Infinity")
}

func TestRenderListTemplateBodyShapes(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{Filter: RouteFilter{Path: "/users"}})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	assertNotContains(t, rendered, "## GET /users/{id}")
	assertContains(t, rendered, "* Peers: Requires passwordConfirm to be present when password is.")
	assertContains(t, rendered, "* `name` (`string`, required): Display name.\n  * Rules: Regex `^[a-z]+$ (lowercase)`")
	assertContains(t, rendered, "* `passwordConfirm` (`reference`)\n  * References: `password`")
	assertContains(t, rendered, "* `serial` when `kind` matches `string` in `\"robot\"`")
	assertContains(t, rendered, "  * then (`string`, required)")
	assertContains(t, rendered, "  * otherwise (`any`)\n    * Forbidden: yes")
	assertContains(t, rendered, "* `contact` (`alternatives`)")
	assertContains(t, rendered, "  * alternative #1 (`string`)\n    * Rules: Email")
	assertContains(t, rendered, "  * alternative #2 (`number`)")
	assertContains(t, rendered, "* pattern `^x-` (`string`)")

	assertContains(t, rendered, "### Response\n")
	assertContains(t, rendered, "* value (`array`)\n  * item (`object`)\n    * `id` (`string`)")
}

func TestRenderRouteOrder(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{Jobs: 2})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	headings := regexp.MustCompile(`(?m)^## .+$`).FindAllString(rendered, -1)
	want := "## GET /users,## POST /users,## GET /users/{id}"
	if got := strings.Join(headings, ","); got != want {
		t.Fatalf("route headings = %q, want %q", got, want)
	}

	assertNotContains(t, rendered, "OPTIONS")
	assertNotContains(t, rendered, "/internal/cache")
	assertNotContains(t, rendered, "/debug")
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := RenderFile(routesFixturePath, Options{Jobs: 1})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	for range 5 {
		again, err := RenderFile(routesFixturePath, Options{Jobs: 8})
		if err != nil {
			t.Fatalf("RenderFile: %v", err)
		}

		if again != first {
			t.Fatalf("render output differs between runs")
		}
	}
}

func TestRenderTableTemplate(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{TemplateName: "table"})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	assertContains(t, rendered, "| Attribute | Value |")
	assertContains(t, rendered, "| Note | Cached for one minute. |")
	assertContains(t, rendered, "| Parameter | Type | Required | Description | Details |")
	assertContains(t, rendered, "| id | string | yes | User identifier. | Rules: Guid |")
	assertContains(t, rendered, "| fields[] | string | no |  | Forbidden: yes; Allowed values: `\"password\"` |")
	assertContains(t, rendered, "Validation forbids any value for this section.")
}

func TestRenderOptionsTitleHostAndMarker(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{
		Title:      "Users   API",
		Host:       "users.internal",
		SourcePath: "routes.yaml",
		ListMarker: "-",
	})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	assertContains(t, rendered, "# Users API\n")
	assertContains(t, rendered, "Host: `users.internal`")
	assertContains(t, rendered, "Source: `routes.yaml`")
	assertContains(t, rendered, "- [GET /users](#get-users)")
	assertContains(t, rendered, "- `id` (`string`, required): User identifier.")
	assertNotContains(t, rendered, "* `id`")
}

func TestRenderWrapWidth(t *testing.T) {
	t.Parallel()

	table := RouteTable{Routes: []Route{{
		Method:      "get",
		Path:        "/wrap",
		Description: "one two three four five six seven eight nine ten",
	}}}

	rendered, err := Render(table, Options{WrapWidth: 20})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertContains(t, rendered, "one two three four\nfive six seven eight\nnine ten")
}

func TestRenderKeepsMarkdownDescription(t *testing.T) {
	t.Parallel()

	table := RouteTable{Routes: []Route{{
		Method:      "get",
		Path:        "/md",
		Description: "Intro line.\n\n- first\n- second\n\n```\ncode  block\n```",
	}}}

	rendered, err := Render(table, Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertContains(t, rendered, "Intro line.\n\n* first\n* second")
	assertContains(t, rendered, "```\ncode  block\n```")
}

func TestRenderCustomTemplate(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{
		TemplateText: `{{ range .Routes }}{{ .Heading }};{{ end }}`,
	})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	if rendered != "GET /users;POST /users;GET /users/{id};\n" {
		t.Fatalf("custom template output = %q", rendered)
	}

	_, err = RenderFile(routesFixturePath, Options{TemplateText: `{{ range }}`})
	if !errors.Is(err, ErrParseCustomTemplate) {
		t.Fatalf("err = %v, want ErrParseCustomTemplate", err)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Parallel()

	_, err := RenderFile(routesFixturePath, Options{Filter: RouteFilter{Path: "/missing"}})
	if !errors.Is(err, ErrNoRoutes) {
		t.Fatalf("err = %v, want ErrNoRoutes", err)
	}

	_, err = RenderFile(routesFixturePath, Options{TemplateName: "cards"})
	if !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("err = %v, want ErrUnknownBuiltinTemplate", err)
	}

	_, err = RenderDocs(nil, Options{})
	if !errors.Is(err, ErrNoRoutes) {
		t.Fatalf("err = %v, want ErrNoRoutes", err)
	}
}

func TestBuiltinTemplates(t *testing.T) {
	t.Parallel()

	names := BuiltinTemplateNames()
	if strings.Join(names, ",") != "list,table" {
		t.Fatalf("unexpected template names: %v", names)
	}

	for _, name := range names {
		text, err := BuiltinTemplate(name)
		if err != nil || !strings.Contains(text, "{{ .Title }}") {
			t.Fatalf("BuiltinTemplate(%q) = %q, %v", name, text, err)
		}
	}

	if _, err := BuiltinTemplate("missing"); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRenderOutputHasNoHTML(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(routesFixturePath, Options{})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	htmlPattern := regexp.MustCompile(`<[A-Za-z/][^>]*>`)
	if htmlPattern.MatchString(rendered) {
		t.Fatalf("rendered markdown contains html tags")
	}

	if strings.Contains(rendered, "\n\n\n") {
		t.Fatalf("rendered markdown contains repeated blank lines")
	}
}

func TestMarkdownHeadingAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"GET /users/{id}":    "get-usersid",
		"POST /orders_items": "post-orders-items",
		"  ":                 "",
	}

	for input, want := range cases {
		if got := markdownHeadingAnchor(input); got != want {
			t.Fatalf("markdownHeadingAnchor(%q) = %q, want %q", input, got, want)
		}
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
