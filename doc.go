// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

/*
Package routedoc renders API documentation from route tables whose request and
response sections are described by validation schema descriptions.

The core is Normalize: a pure recursive transform from a schema Description
(objects, arrays, alternatives, conditionals, references, value constraints and
rules) into a DocNode tree that templates render without schema-specific logic.
Normalize never mutates its input, so one description may be shared by many
routes and normalized concurrently.

Normalize one section:

	body, err := routedoc.ParseDescription(bodyBytes)
	if err != nil {
		return err
	}

	doc, err := routedoc.Describe(body)
	if err != nil {
		return err
	}

	fmt.Println(doc.Kind, len(doc.Children))

Render a route table file:

	md, err := routedoc.RenderFile("routes.yaml", routedoc.Options{
		Title:        "Orders API",
		TemplateName: "table",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Serve documentation over HTTP:

	table, err := routedoc.LoadRoutesFile("routes.yaml")
	if err != nil {
		return err
	}

	handler, err := routedoc.NewHandler(table, routedoc.Options{})
	if err != nil {
		return err
	}

	http.Handle("/docs", handler)

Generate example payload for a documented section:

	payload, err := routedoc.GenerateExample(doc, routedoc.ExampleModeRequired, routedoc.ExampleFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(payload))
*/
package routedoc
