package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/a-peyrard/instance/set"
	"github.com/a-peyrard/instance/slices"
)

const instanceImportPath = "github.com/a-peyrard/instance"

var registryTemplate = template.Must(template.New("registry").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`// Code generated by instancegen. DO NOT EDIT.

package {{ .PackageName }}

import (
{{- range .Imports }}
	{{ if .Alias }}{{ .Alias }} {{ end }}"{{ .Path }}"
{{- end }}
)

// Register attaches the hooks declared with @decorate annotations.
func ({{ .StructName }}) Register(r *instance.Registry) error {
{{- range .Types }}
	{
		c, err := instance.For[{{ .FQN }}](r)
		if err != nil {
			return err
		}
{{- range .Hooks }}
		if err := c.Decorate({{ quote .Member }}, {{ .Action }}, instance.Priority({{ .Priority }}){{ if .Description }}, instance.Description({{ quote .Description }}){{ end }}); err != nil {
			return err
		}
{{- end }}
	}
{{- end }}
	return nil
}
`))

type (
	importView struct {
		Alias string
		Path  string
	}

	hookView struct {
		Member      string
		Action      string
		Priority    int
		Description string
	}

	typeView struct {
		FQN   string
		Hooks []hookView
	}

	registryView struct {
		PackageName string
		StructName  string
		Imports     []importView
		Types       []typeView
	}
)

// generateCode writes the Register method of registry, attaching hooks, to outputPath.
func generateCode(outputPath string, registry *RegistryDefinition, hooks []HookDefinition) error {
	code, err := render(registry, hooks)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, code, 0644)
}

func render(registry *RegistryDefinition, hooks []HookDefinition) ([]byte, error) {
	importWithAlias := aliasImports(registry, hooks)

	view := registryView{
		PackageName: registry.PackageName,
		StructName:  registry.StructName,
		Imports:     []importView{{Path: instanceImportPath}},
	}
	for path, alias := range importWithAlias {
		view.Imports = append(view.Imports, importView{Alias: alias, Path: path})
	}
	sort.Slice(view.Imports, func(i, j int) bool {
		return view.Imports[i].Path < view.Imports[j].Path
	})

	// types keep the order of their first hook, hooks keep their declaration order
	indexes := make(map[string]int)
	for _, h := range hooks {
		importPath := localImportPath(registry, h.ImportPath)
		key := importPath + "." + h.TypeName
		idx, found := indexes[key]
		if !found {
			idx = len(view.Types)
			indexes[key] = idx
			view.Types = append(view.Types, typeView{
				FQN: generateFQN(importPath, "*"+h.TypeName, importWithAlias),
			})
		}
		view.Types[idx].Hooks = append(view.Types[idx].Hooks, hookView{
			Member:      h.Member,
			Action:      generateFQN(importPath, h.With, importWithAlias),
			Priority:    h.Priority,
			Description: h.Description,
		})
	}

	var buf bytes.Buffer
	if err := registryTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, buf.String())
	}
	return code, nil
}

// aliasImports gives an unique alias to every package declaring decorated types.
func aliasImports(registry *RegistryDefinition, hooks []HookDefinition) map[string]string {
	paths := set.New[string]()
	for _, h := range hooks {
		if importPath := localImportPath(registry, h.ImportPath); importPath != "" {
			paths.Add(importPath)
		}
	}
	sorted := make([]string, 0, paths.Size())
	for path := range paths {
		sorted = append(sorted, path)
	}
	sort.Strings(sorted)

	aliases := set.NewWithValues(instancePackage)
	importWithAlias := make(map[string]string, len(sorted))
	for _, path := range sorted {
		alias := findSuitableAlias(path, aliases)
		aliases.Add(alias)
		importWithAlias[path] = alias
	}
	return importWithAlias
}

// localImportPath returns "" for types declared in the package of the registry.
func localImportPath(registry *RegistryDefinition, importPath string) string {
	if importPath == registry.ImportPath {
		return ""
	}
	return importPath
}

// findSuitableAlias uses the last token of pkg as alias, prefixed by the initials of the previous
// tokens until there is no collision, then suffixed by a counter.
func findSuitableAlias(pkg string, aliases set.Set[string]) string {
	tokens := slices.Map(strings.Split(pkg, "/"), sanitize)
	tokens = slices.Filter(tokens, func(token string) bool { return token != "" })
	if len(tokens) == 0 {
		tokens = []string{"pkg"}
	}

	alias := tokens[len(tokens)-1]
	if unicode.IsDigit(rune(alias[0])) {
		alias = "p" + alias
	}
	for i := len(tokens) - 2; aliases.Contains(alias) && i >= 0; i-- {
		alias = tokens[i][:1] + alias
	}
	if !aliases.Contains(alias) {
		return alias
	}

	for i := 0; ; i++ {
		if candidate := alias + strconv.Itoa(i); !aliases.Contains(candidate) {
			return candidate
		}
	}
}

func sanitize(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func generateFQN(importPath string, typeName string, importWithAlias map[string]string) string {
	if importPath == "" {
		return typeName
	}

	alias := importWithAlias[importPath]
	if strings.HasPrefix(typeName, "*") {
		return "*" + alias + "." + strings.TrimPrefix(typeName, "*")
	}
	return alias + "." + typeName
}
