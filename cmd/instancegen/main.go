// Command instancegen generates the registration of the hooks declared with annotations.
//
// Fields are annotated with a line comment, methods with their doc comment:
//
//	type Widget struct {
//		X int // @decorate with=Increment priority=1
//	}
//
//	// Render draws the widget.
//	//
//	// @decorate with="Trace()" description="log every render"
//	func (w *Widget) Render() string
//
// with names a function or an expression of the package declaring the type, it must be accepted by
// instance.NewDecorator. The generator is run with go:generate from the file declaring a struct
// embedding instance.EmptyRegistry, it writes the Register method of this struct in <file>_gen.go.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-peyrard/instance/slices"
	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached root
		}
		dir = parent
	}
	return "."
}

func main() {
	dryRun := os.Getenv("DRY_RUN") == "true"

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		With().
		Timestamp().
		Logger()

	startScan := time.Now()

	// capture the target file/package, where the generator is invoked
	targetFile := os.Getenv("GOFILE")
	targetPackage := os.Getenv("GOPACKAGE")
	currentDir, _ := os.Getwd()
	targetFilePath := filepath.Join(currentDir, targetFile)

	// hooks can be declared anywhere in the module
	moduleRoot := findModuleRoot()
	if err := os.Chdir(moduleRoot); err != nil {
		logger.Fatal().Err(err).Msg("Failed to change directory to module root")
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load packages")
	}

	var (
		hookDefinitions    []HookDefinition
		registryDefinition *RegistryDefinition
	)
	for _, pkg := range pkgs {
		logger := logger.With().Str("package", pkg.ID).Logger()
		logger.Debug().Msg("Scanning package")
		for _, file := range pkg.Syntax {
			filePath := pkg.Fset.Position(file.Pos()).Filename

			// only look for the registry in the file triggering the generation
			if filePath == targetFilePath {
				if registry := findRegistry(file, pkg.PkgPath); registry != nil {
					logger.Debug().Str("struct", registry.StructName).Msg("=> Found Registry")
					registryDefinition = registry
				}
			}

			hookDefinitions = append(hookDefinitions, scanFile(&logger, file, pkg.PkgPath)...)
		}
	}

	stopScan := time.Now()

	if registryDefinition == nil {
		logger.Error().Msgf("No Registry struct found in the target package: %s, make sure you have a struct like this:\ntype Registry struct {\n    instance.EmptyRegistry\n}", targetPackage)
		os.Exit(1)
	}

	logger.Info().Msgf("👨‍🔧 Registry found: %+v", registryDefinition)
	logger.Info().Msgf("🎯 %d hooks found in the module", len(hookDefinitions))
	logger.Debug().Msgf("Hooks:\n%s", strings.Join(slices.Map(hookDefinitions, HookDefinition.String), "\n----\n"))
	logger.Info().Msgf("🕵️‍♂️ Scanning completed in %s", stopScan.Sub(startScan))

	outputPath := filepath.Join(
		filepath.Dir(targetFilePath),
		strings.TrimSuffix(filepath.Base(targetFilePath), ".go")+"_gen.go",
	)
	if dryRun {
		outputPath = filepath.Join(os.TempDir(), filepath.Base(outputPath))
	}

	if err := generateCode(outputPath, registryDefinition, hookDefinitions); err != nil {
		logger.Error().Err(err).Msgf("Failed to generate code in %s", outputPath)
		os.Exit(1)
	}
	logger.Info().Msgf("✅ Code generated successfully in %s", outputPath)
}
