package main

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/rs/zerolog"
)

const (
	decorateAnnotationTag = "@decorate"

	instancePackage = "instance"
	emptyRegistry   = "EmptyRegistry"
)

type (
	// HookDefinition is a @decorate annotation found on a field or a method.
	HookDefinition struct {
		TypeName   string
		Member     string
		Method     bool
		ImportPath string

		With        string
		Priority    int
		Description string
	}

	RegistryDefinition struct {
		PackageName string
		StructName  string
		ImportPath  string
	}
)

func (h HookDefinition) String() string {
	kind := "field"
	if h.Method {
		kind = "method"
	}
	return fmt.Sprintf(
		`🪝 Hook: %s.%s (%s)
Import Path: %s
With: %s
Priority: %d
Description: %s`,
		h.TypeName,
		h.Member,
		kind,
		h.ImportPath,
		h.With,
		h.Priority,
		h.Description,
	)
}

// findRegistry looks for a struct embedding instance.EmptyRegistry in file.
func findRegistry(file *ast.File, importPath string) *RegistryDefinition {
	var registry *RegistryDefinition
	ast.Inspect(file, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		structType, ok := typeSpec.Type.(*ast.StructType)
		if !ok {
			return true
		}
		for _, field := range structType.Fields.List {
			if len(field.Names) != 0 { // only embedded fields
				continue
			}
			if sel, ok := field.Type.(*ast.SelectorExpr); ok {
				if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == instancePackage && sel.Sel.Name == emptyRegistry {
					registry = &RegistryDefinition{
						PackageName: file.Name.Name,
						StructName:  typeSpec.Name.Name,
						ImportPath:  importPath,
					}
					return false
				}
			}
		}
		return true
	})
	return registry
}

// scanFile collects the hooks declared in file, in declaration order.
func scanFile(logger *zerolog.Logger, file *ast.File, importPath string) []HookDefinition {
	var hooks []HookDefinition

	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.TypeSpec:
			structType, ok := decl.Type.(*ast.StructType)
			if !ok {
				return true
			}
			for _, field := range structType.Fields.List {
				docText := commentText(field.Doc) + "\n" + commentText(field.Comment)
				if !strings.Contains(docText, decorateAnnotationTag) {
					continue
				}
				for _, name := range field.Names {
					logger := logger.With().Str("type", decl.Name.Name).Str("field", name.Name).Logger()
					if !name.IsExported() {
						logger.Warn().Msg("Only exported fields can be decorated, skipping it")
						continue
					}
					logger.Debug().Msg("=> Found decorated field")
					hooks = append(hooks, toHooks(&logger, decl.Name.Name, name.Name, false, importPath, docText)...)
				}
			}

		case *ast.FuncDecl:
			if decl.Recv == nil || decl.Doc == nil || !strings.Contains(decl.Doc.Text(), decorateAnnotationTag) {
				return true
			}
			typeName := receiverTypeName(decl.Recv.List[0].Type)
			logger := logger.With().Str("type", typeName).Str("method", decl.Name.Name).Logger()
			if !decl.Name.IsExported() {
				logger.Warn().Msg("Only exported methods can be decorated, skipping it")
				return true
			}
			logger.Debug().Msg("=> Found decorated method")
			hooks = append(hooks, toHooks(&logger, typeName, decl.Name.Name, true, importPath, decl.Doc.Text())...)
		}
		return true
	})

	return hooks
}

func toHooks(logger *zerolog.Logger, typeName, member string, method bool, importPath string, docText string) []HookDefinition {
	var hooks []HookDefinition
	for _, annotation := range parseDecorateAnnotations(logger, docText) {
		with, found := annotation.With()
		if !found {
			logger.Error().Msgf("%s.%s must have a with property naming the action", typeName, member)
			continue
		}
		if unknown := annotation.UnknownProperties(); len(unknown) > 0 {
			logger.Warn().Strs("properties", unknown).Msg("Unknown properties, ignoring them")
		}
		priority, _ := annotation.Priority()

		hooks = append(hooks, HookDefinition{
			TypeName:    typeName,
			Member:      member,
			Method:      method,
			ImportPath:  importPath,
			With:        with,
			Priority:    priority,
			Description: annotation.Description(),
		})
	}
	return hooks
}

func commentText(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	return group.Text()
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr: // generic receiver
		return receiverTypeName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return fmt.Sprintf("%v", t)
	}
}
