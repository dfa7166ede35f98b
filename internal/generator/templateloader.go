package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// TemplateLoader is an interface for loading and generating files from templates
type TemplateLoader interface {
	// LoadTemplate loads a template by name
	LoadTemplate(name string) (*template.Template, error)

	// ListFiles returns a list of all template files
	ListFiles() ([]string, error)

	// GenerateFile generates a file using a template and data
	GenerateFile(templateName, outputFile string, data interface{}) error
}

// FSTemplateLoader loads templates from any fs.FS implementation
type FSTemplateLoader struct {
	fs      fs.FS
	funcMap template.FuncMap
}

// NewFSTemplateLoader creates a new template loader from any fs.FS implementation
func NewFSTemplateLoader(filesystem fs.FS, funcMap template.FuncMap) TemplateLoader {
	return &FSTemplateLoader{
		fs:      filesystem,
		funcMap: funcMap,
	}
}

// NewEmbeddedTemplateLoader creates a template loader over the embedded templates directory
func NewEmbeddedTemplateLoader(funcMap template.FuncMap) (TemplateLoader, error) {
	sub, err := fs.Sub(EmbeddedFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	return NewFSTemplateLoader(sub, funcMap), nil
}

// NewOSTemplateLoader creates a template loader from the OS filesystem
func NewOSTemplateLoader(rootDir string, funcMap template.FuncMap) (TemplateLoader, error) {
	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("template directory does not exist: %s", rootDir)
	}
	return NewFSTemplateLoader(os.DirFS(rootDir), funcMap), nil
}

// LoadTemplate loads a template from the filesystem
func (t *FSTemplateLoader) LoadTemplate(templatePath string) (*template.Template, error) {
	content, err := fs.ReadFile(t.fs, templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}
	tmpl, err := template.New(templatePath).Funcs(t.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templatePath, err)
	}
	return tmpl, nil
}

// ListFiles returns a list of all template files
func (t *FSTemplateLoader) ListFiles() ([]string, error) {
	var templateFiles []string
	err := fs.WalkDir(t.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			templateFiles = append(templateFiles, path)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to list template files: %w", err)
	}
	return templateFiles, nil
}

// GenerateFile generates a file using a template and data.
// Go sources are run through gofmt before they are written.
func (t *FSTemplateLoader) GenerateFile(templateName, outputFile string, data interface{}) error {
	tmpl, err := t.LoadTemplate(templateName)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	content := buf.Bytes()
	if strings.HasSuffix(outputFile, ".go") {
		formatted, err := format.Source(content)
		if err != nil {
			return fmt.Errorf("failed to format %s: %w", outputFile, err)
		}
		content = formatted
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// ExtractEmbeddedFS extracts an embedded filesystem to a directory
func ExtractEmbeddedFS(filesystem fs.FS, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	var extracted []string
	err := fs.WalkDir(filesystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		target := filepath.Join(destDir, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		content, err := fs.ReadFile(filesystem, path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		extracted = append(extracted, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract filesystem: %w", err)
	}
	return extracted, nil
}
