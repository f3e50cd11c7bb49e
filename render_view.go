// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"strconv"
	"strings"
)

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title      string
	Host       string
	SourcePath string
	ListMarker string
	Routes     []routeView
}

// routeView represents one documented route section in markdown output.
type routeView struct {
	Heading     string
	Method      string
	Path        string
	Description string
	Notes       []string
	Attributes  []attributeView
	Sections    []sectionView
}

// sectionView represents one validated part of a route (query, payload, response...).
type sectionView struct {
	Title      string
	Denied     bool
	Attributes []attributeView
	Params     []paramView
}

// paramView is one flattened parameter of a section tree.
type paramView struct {
	Indent      string
	Heading     string
	Path        string
	Kind        string
	Required    string
	Description string
	Attributes  []attributeView
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// paramWalker flattens documentation trees into parameter lists.
type paramWalker struct {
	params []paramView
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(docs []RouteDoc, opt Options) renderView {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultTitle
	}

	formatter := newDescriptionFormatter(opt.WrapWidth, opt.ListMarker)

	view := renderView{
		Title:      sanitizeText(title),
		Host:       escapeInline(strings.TrimSpace(opt.Host)),
		SourcePath: escapeInline(strings.TrimSpace(opt.SourcePath)),
		ListMarker: formatter.marker,
		Routes:     make([]routeView, 0, len(docs)),
	}

	for _, doc := range docs {
		view.Routes = append(view.Routes, buildRouteView(doc, formatter))
	}

	return view
}

// buildRouteView prepares one route with its sections.
func buildRouteView(doc RouteDoc, formatter descriptionFormatter) routeView {
	route := routeView{
		Heading:     sanitizeText(doc.Method + " " + doc.Path),
		Method:      doc.Method,
		Path:        escapeInline(doc.Path),
		Description: formatter.format(doc.Description),
		Notes:       noteLines(doc.Notes),
		Attributes:  routeAttributes(doc),
	}

	sections := []struct {
		title string
		node  *DocNode
	}{
		{title: "Path parameters", node: doc.PathParams},
		{title: "Query parameters", node: doc.QueryParams},
		{title: "Payload", node: doc.BodyParams},
		{title: "Response", node: doc.ResponseParams},
	}

	for _, code := range sortedStatusCodes(doc.StatusSchema) {
		sections = append(sections, struct {
			title string
			node  *DocNode
		}{title: "Response " + code, node: doc.StatusSchema[code]})
	}

	for _, section := range sections {
		if section.node == nil {
			continue
		}

		route.Sections = append(route.Sections, buildSectionView(section.title, section.node))
	}

	return route
}

// buildSectionView flattens one section tree; object roots list their children directly.
func buildSectionView(title string, node *DocNode) sectionView {
	section := sectionView{Title: title}
	if node.IsDenied {
		section.Denied = true
		return section
	}

	var walker paramWalker
	if node.Kind == KindObject && !node.IsConditional() {
		section.Attributes = nodeAttributes(node)
		walker.walkChildren(node, 0, "")
	} else {
		walker.walk(node, 0, "", "value")
	}

	section.Params = walker.params
	return section
}

// walk appends node and its nested nodes to the parameter list.
func (walker *paramWalker) walk(node *DocNode, depth int, path, label string) {
	if node == nil {
		return
	}

	display := path
	if display == "" {
		display = label
	}

	indent := strings.Repeat("  ", depth)
	switch {
	case node.IsDenied:
		walker.params = append(walker.params, paramView{
			Indent:      indent,
			Heading:     label,
			Path:        escapeInline(display),
			Kind:        "denied",
			Required:    yesNo(false),
			Description: "validation forbids any value",
		})
	case node.IsConditional():
		condition := node.Condition
		walker.params = append(walker.params, paramView{
			Indent:     indent,
			Heading:    label + " when `" + escapeInline(condition.Key) + "` matches " + summarizeDocNode(condition.Value),
			Path:       escapeInline(display),
			Kind:       "condition",
			Required:   yesNo(false),
			Attributes: nodeAttributes(condition.Value),
		})

		walker.walk(node.Then, depth+1, suffixPath(path, "then"), "then")
		walker.walk(node.Otherwise, depth+1, suffixPath(path, "otherwise"), "otherwise")
	default:
		heading := label + " (`" + escapeInline(node.Kind.String())
		if node.Required() {
			heading += "`, required)"
		} else {
			heading += "`)"
		}

		walker.params = append(walker.params, paramView{
			Indent:      indent,
			Heading:     heading,
			Path:        escapeInline(display),
			Kind:        escapeInline(node.Kind.String()),
			Required:    yesNo(node.Required()),
			Description: sanitizeText(node.Description),
			Attributes:  nodeAttributes(node),
		})

		walker.walkChildren(node, depth+1, path)
	}
}

// walkChildren appends nested nodes of objects, arrays and alternatives.
func (walker *paramWalker) walkChildren(node *DocNode, depth int, path string) {
	for _, child := range node.Children {
		label := "`" + escapeInline(child.Name) + "`"
		if child.Pattern {
			label = "pattern " + label
		}

		walker.walk(child, depth, appendPath(path, child.Name), label)
	}

	for index, item := range node.OrderedItems {
		position := strconv.Itoa(index)
		walker.walk(item, depth, path+"["+position+"]", "item #"+position)
	}

	for _, item := range node.Items {
		walker.walk(item, depth, path+"[]", "item")
	}

	for _, item := range node.ForbiddenItems {
		walker.walk(item, depth, path+"[]", "forbidden item")
	}

	for index, alternative := range node.Alternatives {
		position := strconv.Itoa(index + 1)
		walker.walk(alternative, depth, suffixPath(path, "alternative "+position), "alternative #"+position)
	}
}

// appendPath joins path segments with a dot while preserving empty root prefix.
func appendPath(base, segment string) string {
	base = strings.TrimSpace(base)
	segment = strings.TrimSpace(segment)
	if base == "" {
		return segment
	}

	if segment == "" {
		return base
	}

	return base + "." + segment
}

// suffixPath marks a branch of the node at path without adding a key segment.
func suffixPath(path, branch string) string {
	if path == "" {
		return "(" + branch + ")"
	}

	return path + " (" + branch + ")"
}
