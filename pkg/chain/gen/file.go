package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"text/template"
)

// chainImport is always the first import of a generated file.
const chainImport = "github.com/bugadani/object-chain/pkg/chain"

// File describes one generated source file of chain type aliases.
type File struct {
	// Package is the package clause of the generated file.
	Package string `mapstructure:"package"`

	// Imports lists extra import paths needed by the payload types. The
	// chain package itself is imported unconditionally.
	Imports []string `mapstructure:"imports"`

	// Specs are the aliases to generate, emitted in order.
	Specs []Spec `mapstructure:"chains"`
}

type alias struct {
	Name string
	Expr string
}

var fileTemplate = template.Must(template.New("chains").Parse(
	`// Code generated by chaingen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)

{{range .Aliases -}}
type {{.Name}} = {{.Expr}}

{{end -}}
`))

// Render expands every spec and returns a gofmt-formatted source file.
// Errors from individual specs are collected and reported together, so a
// config with several broken chains fails with all of them named.
func (f File) Render() ([]byte, error) {
	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", f.Package)
	}
	if len(f.Specs) == 0 {
		return nil, errors.New("no chains to generate")
	}

	var errs []error
	aliases := make([]alias, 0, len(f.Specs))
	for _, s := range f.Specs {
		expr, err := s.expand()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		aliases = append(aliases, alias{Name: s.Name, Expr: expr})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	data := struct {
		Package string
		Imports []string
		Aliases []alias
	}{
		Package: f.Package,
		Imports: append([]string{chainImport}, f.Imports...),
		Aliases: aliases,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render chains: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}
