// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerServesIndex(t *testing.T) {
	t.Parallel()

	handler := newFixtureHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	if got := recorder.Header().Get("Content-Type"); got != markdownContentType {
		t.Fatalf("content type = %q", got)
	}

	body := recorder.Body.String()
	assertContains(t, body, "## GET /users/{id}")
	assertContains(t, body, "## POST /users")
}

func TestHandlerFiltersByPath(t *testing.T) {
	t.Parallel()

	handler := newFixtureHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?path=/users", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	body := recorder.Body.String()
	assertContains(t, body, "## POST /users")
	assertNotContains(t, body, "## GET /users/{id}")
}

func TestHandlerUnknownPathIsBadRequest(t *testing.T) {
	t.Parallel()

	handler := newFixtureHandler(t)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?path=/missing", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}

	assertContains(t, recorder.Body.String(), ErrNoRoutes.Error())
}

func TestHandlerMethods(t *testing.T) {
	t.Parallel()

	handler := newFixtureHandler(t)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", recorder.Code)
	}

	if got := recorder.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("allow header = %q", got)
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodHead, "/", nil))
	if recorder.Code != http.StatusOK || recorder.Body.Len() != 0 {
		t.Fatalf("HEAD status = %d body = %d bytes", recorder.Code, recorder.Body.Len())
	}
}

func TestNewHandlerRejectsEmptyTable(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(RouteTable{}, Options{}); !errors.Is(err, ErrNoRoutes) {
		t.Fatalf("err = %v, want ErrNoRoutes", err)
	}
}

func newFixtureHandler(t *testing.T) http.Handler {
	t.Helper()

	handler, err := NewHandler(loadRoutesFixture(t), Options{})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	return handler
}
