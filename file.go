// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"io"
	"sort"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// ProtoFile is a complete proto3 source file. Rendering always begins with
// the syntax statement; the package statement, hoisted imports and file
// options follow when present, then the top level declarations in insertion
// order. Imports implied by declarations (extend blocks need the descriptor
// proto) are merged with the explicit ones, deduplicated by path and sorted.
type ProtoFile struct {
	comment     []string
	packageName string
	imports     []ImportSpec
	options     []*OptionSpec
	types       []typeDeclaration
}

// ProtoFileBuilder assembles a ProtoFile.
type ProtoFileBuilder struct {
	comment        []string
	packageName    string
	imports        []ImportSpec
	optionBuilders []*OptionBuilder
	typeBuilders   []typeDeclarationBuilder
}

// NewProtoFile starts an empty proto3 file.
func NewProtoFile() *ProtoFileBuilder {
	return &ProtoFileBuilder{}
}

// SetComment sets the leading file comment, rendered above the syntax
// statement.
func (b *ProtoFileBuilder) SetComment(lines ...string) *ProtoFileBuilder {
	b.comment = append([]string{}, lines...)
	return b
}

// SetPackageName sets the package statement. Files without a package are
// legal and simply omit the statement.
func (b *ProtoFileBuilder) SetPackageName(name string) *ProtoFileBuilder {
	checkArgument(name != "", "package name may not be empty")
	b.packageName = name
	return b
}

// AddImports appends explicit import statements. Duplicate paths collapse at
// render time; an explicit import wins over an implied one with the same
// path, preserving its modifier.
func (b *ProtoFileBuilder) AddImports(imports ...ImportSpec) *ProtoFileBuilder {
	b.imports = append(b.imports, imports...)
	return b
}

// AddOptions appends file options. Options must be file type.
func (b *ProtoFileBuilder) AddOptions(options ...*OptionBuilder) *ProtoFileBuilder {
	b.optionBuilders = append(b.optionBuilders, options...)
	return b
}

// AddMessages appends top level message declarations.
func (b *ProtoFileBuilder) AddMessages(messages ...*MessageBuilder) *ProtoFileBuilder {
	for _, m := range messages {
		b.typeBuilders = append(b.typeBuilders, m)
	}
	return b
}

// AddEnums appends top level enum declarations.
func (b *ProtoFileBuilder) AddEnums(enums ...*EnumBuilder) *ProtoFileBuilder {
	for _, e := range enums {
		b.typeBuilders = append(b.typeBuilders, e)
	}
	return b
}

// AddServices appends service declarations.
func (b *ProtoFileBuilder) AddServices(services ...*ServiceBuilder) *ProtoFileBuilder {
	for _, s := range services {
		b.typeBuilders = append(b.typeBuilders, s)
	}
	return b
}

// AddExtensions appends extend blocks.
func (b *ProtoFileBuilder) AddExtensions(extensions ...*ExtensionBuilder) *ProtoFileBuilder {
	for _, e := range extensions {
		b.typeBuilders = append(b.typeBuilders, e)
	}
	return b
}

func (b *ProtoFileBuilder) Build() *ProtoFile {
	file := &ProtoFile{
		comment:     b.comment,
		packageName: b.packageName,
		imports:     append([]ImportSpec{}, b.imports...),
		options:     buildOptions(OptionTypeFile, b.optionBuilders),
	}
	for _, tb := range b.typeBuilders {
		file.types = append(file.types, tb.buildTypeDeclaration())
	}
	return file
}

// Validate checks the whole file, including every nested scope, for name and
// number conflicts without producing output.
func (f *ProtoFile) Validate() error {
	var names nameMonitor
	names.reset()
	for _, t := range f.types {
		if err := names.add(t.typeName()); err != nil {
			return err
		}
		if v, ok := t.(validator); ok {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// hoistedImports merges explicit and implied imports, deduplicates by path
// keeping the earliest occurrence, and sorts by path.
func (f *ProtoFile) hoistedImports() []ImportSpec {
	all := append([]ImportSpec{}, f.imports...)
	for _, t := range f.types {
		if imp, ok := t.(importer); ok {
			all = append(all, imp.imports()...)
		}
	}
	seen := make(map[string]bool, len(all))
	merged := all[:0]
	for _, imp := range all {
		if !seen[imp.Path()] {
			seen[imp.Path()] = true
			merged = append(merged, imp)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Path() < merged[j].Path() })
	return merged
}

// packageStatement renders "package x.y;".
type packageStatement string

func (p packageStatement) emit(w *writer.Writer) error {
	return w.Emitf("package %s;\n", string(p))
}

// importGroup renders a run of import statements contiguously.
type importGroup []ImportSpec

func (g importGroup) emit(w *writer.Writer) error {
	for _, imp := range g {
		if err := imp.emit(w); err != nil {
			return err
		}
	}
	return nil
}

func (f *ProtoFile) emit(w *writer.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if len(f.comment) > 0 {
		if err := w.EmitComment(f.comment); err != nil {
			return err
		}
	}
	if err := w.Emit("syntax = \"proto3\";\n"); err != nil {
		return err
	}
	elements := make([]emitter, 0, len(f.types)+3)
	if f.packageName != "" {
		elements = append(elements, packageStatement(f.packageName))
	}
	if imports := f.hoistedImports(); len(imports) > 0 {
		elements = append(elements, importGroup(imports))
	}
	if len(f.options) > 0 {
		elements = append(elements, optionGroup(f.options))
	}
	for _, t := range f.types {
		elements = append(elements, t)
	}
	for _, e := range elements {
		if err := w.Emit("\n"); err != nil {
			return err
		}
		if err := e.emit(w); err != nil {
			return err
		}
	}
	return nil
}

// Render validates the file and writes its source text to out. Rendering is
// repeatable; the model is not consumed.
func (f *ProtoFile) Render(out io.Writer) error {
	w := writer.New(out)
	if err := f.emit(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Err()
}

// RenderString renders the file to a string.
func (f *ProtoFile) RenderString() (string, error) {
	var sb strings.Builder
	if err := f.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
