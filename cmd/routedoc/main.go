// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

// routedoc generates CommonMark API docs from route tables with schema descriptions.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/routedoc"
)

const (
	// serveReadHeaderTimeout bounds slow clients of the serve command.
	serveReadHeaderTimeout = 10 * time.Second
	// serveShutdownTimeout bounds graceful shutdown of the serve command.
	serveShutdownTimeout = 5 * time.Second
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/routedoc"
	_buildTime string
)

// cliOptions describes routedoc CLI flags and subcommands.
type cliOptions struct {
	Config string `short:"c" long:"config" description:"TOML config file with rendering defaults"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Markdown markdownCommand `command:"md" description:"Render route table to markdown"`
	Describe describeCommand `command:"describe" description:"Print normalized documentation tree of routes"`
	Example  exampleCommand  `command:"example" description:"Generate example payload for one route section"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Serve    serveCommand    `command:"serve" description:"Serve rendered documentation over HTTP"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title (default: API reference)"`
	Host         string `short:"H" long:"host" description:"Host shown under the title (default: route table host)"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker" choice:"-" choice:"*"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for route descriptions (default: 80)"`
}

// routeSelectFlags groups route selection flags.
type routeSelectFlags struct {
	Path string `short:"p" long:"path" description:"Document only routes with this exact path"`
	Jobs int    `short:"j" long:"jobs" description:"Concurrent route normalization workers (default: CPU count)"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template style (default: list)" choice:"list" choice:"table"`
}

// markdownCommand converts a route table to markdown.
type markdownCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Route table file (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
	RouteFlags    routeSelectFlags    `group:"Route Select"`
}

// Execute runs md subcommand.
func (command *markdownCommand) Execute(_ []string) error {
	return command.runner.runMarkdown(command.TemplateFlags, command.RenderFlags, command.RouteFlags, command.Args.Input, command.Args.Output)
}

// describeCommand prints normalized route documentation trees.
type describeCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Route table file (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format     string           `short:"F" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	RouteFlags routeSelectFlags `group:"Route Select"`
}

// Execute runs describe subcommand.
func (command *describeCommand) Execute(_ []string) error {
	return command.runner.runDescribe(command.Format, command.RouteFlags, command.Args.Input, command.Args.Output)
}

// exampleCommand generates an example payload for one route section.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Route table file (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Path    string `short:"p" long:"path" description:"Route path" required:"yes"`
	Method  string `short:"m" long:"method" description:"Route method" default:"get"`
	Section string `short:"s" long:"section" description:"Route section: params, query, body, response or a status code" default:"body"`
	Mode    string `short:"M" long:"mode" description:"Example key coverage" choice:"all" choice:"required" default:"all"`
	Format  string `short:"F" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(exampleSelection{
		Path:    command.Path,
		Method:  command.Method,
		Section: command.Section,
		Mode:    routedoc.ExampleMode(command.Mode),
		Format:  routedoc.ExampleFormat(command.Format),
	}, command.Args.Input, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// serveCommand serves rendered documentation over HTTP.
type serveCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Route table file" required:"yes"`
	} `positional-args:"yes"`

	Listen        string              `short:"L" long:"listen" description:"Listen address" default:":8080"`
	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
	RouteFlags    routeSelectFlags    `group:"Route Select"`
}

// Execute runs serve subcommand.
func (command *serveCommand) Execute(_ []string) error {
	return command.runner.runServe(command.Listen, command.TemplateFlags, command.RenderFlags, command.RouteFlags, command.Args.Input)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// exampleSelection identifies the route section an example is generated for.
type exampleSelection struct {
	Path    string
	Method  string
	Section string
	Mode    routedoc.ExampleMode
	Format  routedoc.ExampleFormat
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	options     *cliOptions
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "routedoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runMarkdown renders route table markdown and writes result to stdout or file.
func (runner *cliRunner) runMarkdown(templateFlags templateSelectFlags, renderFlags markdownRenderFlags, routeFlags routeSelectFlags, inputPath, outputPath string) error {
	table, sourcePath, err := runner.readRoutesInput(inputPath)
	if err != nil {
		return fmt.Errorf("read routes input: %w", err)
	}

	opt, err := runner.renderOptions(templateFlags, renderFlags, routeFlags, sourcePath)
	if err != nil {
		return err
	}

	rendered, err := routedoc.Render(table, opt)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput(outputPath, "markdown", []byte(rendered))
}

// runDescribe writes normalized documentation trees of selected routes.
func (runner *cliRunner) runDescribe(format string, routeFlags routeSelectFlags, inputPath, outputPath string) error {
	table, _, err := runner.readRoutesInput(inputPath)
	if err != nil {
		return fmt.Errorf("read routes input: %w", err)
	}

	cfg, err := runner.loadConfig()
	if err != nil {
		return err
	}

	routes := routedoc.FilterRoutes(table.Routes, routedoc.RouteFilter{
		Path:         routeFlags.Path,
		MethodsOrder: cfg.MethodsOrder,
	})
	if len(routes) == 0 {
		return routedoc.ErrNoRoutes
	}

	docs, err := routedoc.DescribeRoutes(context.Background(), routes, firstPositive(routeFlags.Jobs, cfg.Jobs))
	if err != nil {
		return err
	}

	data, err := encodeDocs(docs, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	return runner.writeOutput(outputPath, format, data)
}

// runExample writes generated example payload of one route section.
func (runner *cliRunner) runExample(selection exampleSelection, inputPath, outputPath string) error {
	table, _, err := runner.readRoutesInput(inputPath)
	if err != nil {
		return fmt.Errorf("read routes input: %w", err)
	}

	route, ok := findRoute(table.Routes, selection.Path, selection.Method)
	if !ok {
		return fmt.Errorf("%w: %s %s", routedoc.ErrNoRoutes, strings.ToUpper(selection.Method), selection.Path)
	}

	doc, err := routedoc.DescribeRoute(route)
	if err != nil {
		return fmt.Errorf("%w %s %s: %w", routedoc.ErrDescribeRoute, strings.ToUpper(route.Method), route.Path, err)
	}

	node, err := routeSection(doc, selection.Section)
	if err != nil {
		return err
	}

	payload, err := routedoc.GenerateExample(node, selection.Mode, selection.Format)
	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(outputPath, "example", payload)
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	if strings.TrimSpace(templateName) == "" {
		cfg, err := runner.loadConfig()
		if err != nil {
			return err
		}

		templateName = firstNonEmpty(cfg.Template, "list")
	}

	tpl, err := routedoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, "template", []byte(tpl))
}

// runServe serves rendered documentation until interrupted.
func (runner *cliRunner) runServe(listen string, templateFlags templateSelectFlags, renderFlags markdownRenderFlags, routeFlags routeSelectFlags, inputPath string) error {
	table, sourcePath, err := runner.readRoutesInput(inputPath)
	if err != nil {
		return fmt.Errorf("read routes input: %w", err)
	}

	opt, err := runner.renderOptions(templateFlags, renderFlags, routeFlags, sourcePath)
	if err != nil {
		return err
	}

	handler, err := routedoc.NewHandler(table, opt)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	server := &http.Server{
		Addr:              listen,
		Handler:           handler,
		ReadHeaderTimeout: serveReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	_, _ = fmt.Fprintf(runner.stderr, "serving documentation on %s\n", listen)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve documentation: %w", err)
	}

	return nil
}

// renderOptions merges flags over config file values into render options.
func (runner *cliRunner) renderOptions(templateFlags templateSelectFlags, renderFlags markdownRenderFlags, routeFlags routeSelectFlags, sourcePath string) (routedoc.Options, error) {
	cfg, err := runner.loadConfig()
	if err != nil {
		return routedoc.Options{}, err
	}

	opt := routedoc.Options{
		Title:        firstNonEmpty(renderFlags.Title, cfg.Title),
		Host:         firstNonEmpty(renderFlags.Host, cfg.Host),
		SourcePath:   sourcePath,
		TemplateName: firstNonEmpty(templateFlags.TemplateName, cfg.Template),
		WrapWidth:    firstPositive(renderFlags.WrapWidth, cfg.Wrap),
		ListMarker:   firstNonEmpty(renderFlags.ListMarker, cfg.ListMarker),
		Jobs:         firstPositive(routeFlags.Jobs, cfg.Jobs),
		Filter: routedoc.RouteFilter{
			Path:         routeFlags.Path,
			MethodsOrder: cfg.MethodsOrder,
		},
	}

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return routedoc.Options{}, fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		opt.TemplateText = string(customTemplate)
	}

	return opt, nil
}

// loadConfig reads config file selected by the global --config flag.
func (runner *cliRunner) loadConfig() (fileConfig, error) {
	if runner.options == nil {
		return fileConfig{}, nil
	}

	return loadFileConfig(runner.options.Config, runner.stderr)
}

// readRoutesInput reads route table from file path or stdin and returns source marker.
func (runner *cliRunner) readRoutesInput(path string) (routedoc.RouteTable, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		table, err := routedoc.LoadRoutesFile(path)
		if err != nil {
			return routedoc.RouteTable{}, "", fmt.Errorf("load routes file %q: %w", path, err)
		}

		if len(table.Routes) == 0 {
			writeCLIWarning(runner.stderr, fmt.Sprintf("route table %q has no routes", path))
		}

		return table, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return routedoc.RouteTable{}, "", fmt.Errorf("read routes from stdin: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return routedoc.RouteTable{}, "", errors.New("read routes from stdin: empty input")
	}

	table, err := routedoc.ParseRoutes(data)
	if err != nil {
		return routedoc.RouteTable{}, "", err
	}

	return table, "", nil
}

// writeOutput writes data to stdout or to the output file.
func (runner *cliRunner) writeOutput(outputPath, kind string, data []byte) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// encodeDocs encodes route documentation trees as indented JSON or YAML.
func encodeDocs(docs []routedoc.RouteDoc, format string) ([]byte, error) {
	if format == "yaml" {
		var out bytes.Buffer
		encoder := yaml.NewEncoder(&out)
		encoder.SetIndent(2)
		if err := encoder.Encode(docs); err != nil {
			return nil, err
		}

		if err := encoder.Close(); err != nil {
			return nil, err
		}

		return out.Bytes(), nil
	}

	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(docs); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// findRoute returns the route with path and method, ignoring method case.
func findRoute(routes []routedoc.Route, path, method string) (routedoc.Route, bool) {
	for _, route := range routes {
		if route.Path == path && strings.EqualFold(route.Method, method) {
			return route, true
		}
	}

	return routedoc.Route{}, false
}

// routeSection selects one documented section of a route.
func routeSection(doc routedoc.RouteDoc, section string) (*routedoc.DocNode, error) {
	var node *routedoc.DocNode
	switch strings.ToLower(strings.TrimSpace(section)) {
	case "params":
		node = doc.PathParams
	case "query":
		node = doc.QueryParams
	case "body":
		node = doc.BodyParams
	case "response":
		node = doc.ResponseParams
	default:
		node = doc.StatusSchema[strings.TrimSpace(section)]
	}

	if node == nil {
		return nil, fmt.Errorf("route %s %s has no documented %q section", doc.Method, doc.Path, section)
	}

	return node, nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	runner.options = options
	options.Version.runner = runner
	options.Markdown.runner = runner
	options.Describe.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner
	options.Serve.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"md": strings.TrimSpace(fmt.Sprintf(`
Render a route table (YAML or JSON) to markdown.
Reads routes from file argument or stdin; writes markdown to file argument or stdout.

Examples:
> $ %s md routes.yaml > API.md
> $ cat routes.json | %s md -t table --path /users > users.md
`, programName, programName)),
		"describe": strings.TrimSpace(fmt.Sprintf(`
Print the normalized documentation tree of every documented route.

Examples:
> $ %s describe routes.yaml > routes.doc.json
> $ %s describe -F yaml --path /users routes.yaml
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate an example payload for one route section.
Section is params, query, body, response or a response status code.

Examples:
> $ %s example -p /users -m post -s body routes.yaml
> $ %s example -p /users -s 200 -M required -F yaml routes.yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
		"serve": strings.TrimSpace(fmt.Sprintf(`
Serve rendered documentation over HTTP.
The "path" query parameter limits the page to routes with that path.

Examples:
> $ %s serve routes.yaml
> $ %s serve -L 127.0.0.1:9000 -t table routes.yaml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
