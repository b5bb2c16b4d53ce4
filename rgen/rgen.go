// Package rgen generates Go source for a settings route table described in TOML.
package rgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/crsettings/settingsrouter"
)

// DefaultOutFileName is used when no output file is set.
const DefaultOutFileName = "0_routes_srgen.go"

// New returns a new Generator instance.
func New() *Generator {
	return &Generator{}
}

// Generator turns a TOML route table into Go source.
type Generator struct {
	tableFile   string // TOML input
	outFile     string // Go output, defaults to DefaultOutFileName next to tableFile
	packageName string // package clause of the output, defaults to the output dir name
	varName     string // name of the generated Table variable
}

// SetTableFile sets the TOML route table to read.
func (g *Generator) SetTableFile(tableFile string) *Generator {
	g.tableFile = tableFile
	return g
}

// SetOutFile sets the Go file to write.
func (g *Generator) SetOutFile(outFile string) *Generator {
	g.outFile = outFile
	return g
}

// SetPackageName sets the package name used in the generated file.
// If not set, the base name of the output directory is used.
func (g *Generator) SetPackageName(packageName string) *Generator {
	g.packageName = packageName
	return g
}

// SetVarName sets the name of the generated Table variable.  Defaults to "routeTable".
func (g *Generator) SetVarName(varName string) *Generator {
	g.varName = varName
	return g
}

// OutFile returns the file Generate writes to.
func (g *Generator) OutFile() string {
	if g.outFile != "" {
		return g.outFile
	}
	return filepath.Join(filepath.Dir(g.tableFile), DefaultOutFileName)
}

// Generate does the route generation.
func (g *Generator) Generate() error {

	if g.tableFile == "" {
		return errors.New("no route table file set")
	}

	tf, err := settingsrouter.LoadTable(g.tableFile)
	if err != nil {
		return err
	}

	// validate with every page visible so any row that could ever exist is checked
	if _, err := settingsrouter.BuildRoutes(tf.Table(), nil, tf.Origin); err != nil {
		return fmt.Errorf("invalid route table %q: %w", g.tableFile, err)
	}

	if err := checkConstNames(tf.Routes); err != nil {
		return fmt.Errorf("invalid route table %q: %w", g.tableFile, err)
	}

	src, err := g.render(tf)
	if err != nil {
		return err
	}

	outFile := g.OutFile()
	if err := os.WriteFile(outFile, src, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", outFile, err)
	}

	return nil
}

func (g *Generator) render(tf *settingsrouter.TableFile) ([]byte, error) {

	outFile, err := filepath.Abs(g.OutFile())
	if err != nil {
		return nil, err
	}

	pkg := g.packageName
	if pkg == "" {
		pkg = packageIdent(filepath.Base(filepath.Dir(outFile)))
	}

	varName := g.varName
	if varName == "" {
		varName = "routeTable"
	}

	cm := map[string]interface{}{
		"Package": pkg,
		"VarName": varName,
		"Origin":  tf.Origin,
		"Routes":  tf.Routes,
	}

	fm := template.FuncMap{
		"ConstName": constName,
		"Quote":     strconv.Quote,
		"KindIdent": kindIdent,
	}

	t, err := template.New(DefaultOutFileName).Funcs(fm).Parse(`package {{.Package}}

// WARNING: This file was generated by settingsrouter/rgen. Do not modify.

import "github.com/crsettings/settingsrouter"

// Route names.
const (
{{range .Routes}}	{{ConstName .Name}} = {{Quote .Name}}
{{end}})

{{if .Origin}}// {{.VarName}}Origin is the origin the table was declared with.
const {{.VarName}}Origin = {{Quote .Origin}}

{{end}}// {{.VarName}} is the generated route table.
var {{.VarName}} = settingsrouter.Table{
{{range .Routes}}	{Name: {{ConstName .Name}}, {{if .Parent}}Parent: {{ConstName .Parent}}, {{end}}Path: {{Quote .Path}}, Kind: {{KindIdent .Kind}}{{if .Section}}, Section: {{Quote .Section}}{{end}}{{if .Page}}, Page: {{Quote .Page}}{{end}}{{if .Forward}}, Forward: {{ConstName .Forward}}{{end}}},
{{end}}}
`)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, cm); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w; full output:\n%s", err, buf.Bytes())
	}

	return src, nil
}

// constName turns a route name like "SYNC_ADVANCED" into "RouteSyncAdvanced".
func constName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var sb strings.Builder
	sb.WriteString("Route")
	for _, p := range parts {
		rs := []rune(strings.ToLower(p))
		rs[0] = unicode.ToUpper(rs[0])
		sb.WriteString(string(rs))
	}
	return sb.String()
}

// checkConstNames rejects route names that do not make a Go identifier or that
// map to the same constant as another route.
func checkConstNames(routes []settingsrouter.RouteSpec) error {
	seen := make(map[string]string, len(routes))
	for _, spec := range routes {
		c := constName(spec.Name)
		if !token.IsIdentifier(c) {
			return fmt.Errorf("route name %q does not make a Go identifier (%s)", spec.Name, c)
		}
		if other, ok := seen[c]; ok {
			return fmt.Errorf("route names %q and %q both generate %s", other, spec.Name, c)
		}
		seen[c] = spec.Name
	}
	return nil
}

func kindIdent(k settingsrouter.Kind) string {
	name := k.String()
	return "settingsrouter.Kind" + strings.ToUpper(name[:1]) + name[1:]
}

// packageIdent makes a directory name usable as a package clause.
func packageIdent(dir string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(dir) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	if r, _ := utf8.DecodeRuneInString(sb.String()); sb.Len() == 0 || unicode.IsDigit(r) {
		return "routes"
	}
	return sb.String()
}
