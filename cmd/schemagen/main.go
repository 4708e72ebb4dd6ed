// Package main writes the JSON schema for bench suite files.
// Editors that understand `# yaml-language-server: $schema=...` can then validate suites.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/bench/suite"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/schema"
)

const schemaFile = "suite-v1.schema.json"

func main() {
	outputDir := flag.String("output", "configs/bench", "Output directory for generated schemas")
	flag.Parse()

	path, err := generate(*outputDir)
	if err != nil {
		slog.Error("Failed to generate suite schema", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Generated JSON schema: %s\n", path)
}

func generate(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	codes := apperr.ExpressionCodes()
	enum := make([]any, len(codes))
	for i, c := range codes {
		enum[i] = string(c)
	}

	generator := schema.NewGenerator(
		schema.WithTagName("yaml"),
		schema.WithBaseID("https://calc-hunter.dev/schemas"),
		schema.WithEnum(reflect.TypeOf(apperr.Code("")), enum...),
	)

	schemaJSON, err := generator.GenerateJSONSchema(suite.TestSuite{})
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, schemaFile)
	if err := os.WriteFile(path, []byte(schemaJSON+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write schema: %w", err)
	}
	return path, nil
}
