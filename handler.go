// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// markdownContentType is served for every rendered page.
const markdownContentType = "text/markdown; charset=utf-8"

// docsHandler serves the route index or the page of one route path.
type docsHandler struct {
	table RouteTable
	opt   Options
	index string
}

// NewHandler renders the index once and returns a handler serving it.
// A "path" query parameter renders only routes with that path; 400 when none match.
func NewHandler(table RouteTable, opt Options) (http.Handler, error) {
	index, err := Render(table, opt)
	if err != nil {
		return nil, err
	}

	return &docsHandler{table: table, opt: opt, index: index}, nil
}

// ServeHTTP implements http.Handler.
func (handler *docsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	page := handler.index
	if path := strings.TrimSpace(r.URL.Query().Get("path")); path != "" {
		opt := handler.opt
		opt.Filter.Path = path

		rendered, err := Render(handler.table, opt)
		switch {
		case errors.Is(err, ErrNoRoutes):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		page = rendered
	}

	w.Header().Set("Content-Type", markdownContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	_, _ = io.WriteString(w, page)
}
