package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generate generates all code files from templates by scanning the template directory.
// It returns the paths of the written files.
func Generate(
	templateLoader TemplateLoader,
	templateData *TemplateData,
	outputDir string,
) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	templateFiles, err := templateLoader.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list template files: %w", err)
	}
	if len(templateFiles) == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	var generatedFiles []string
	for _, templateFile := range templateFiles {
		// "ffi.go.tmpl" -> "ffi.go"
		outputFile := filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(templateFile), ".tmpl"))
		if err := templateLoader.GenerateFile(templateFile, outputFile, templateData); err != nil {
			return generatedFiles, fmt.Errorf("failed to generate %s: %w", outputFile, err)
		}
		generatedFiles = append(generatedFiles, outputFile)
	}
	return generatedFiles, nil
}
