package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cshum/gdgen/internal/generator"
)

func main() {
	extractTemplates := flag.Bool("extract", false, "Extract embedded templates and declaration table to a directory")
	extractDir := flag.String("extract-dir", "./templates", "Directory to extract templates to")
	outputDirFlag := flag.String("out", "./gd", "Output directory")
	templateDirFlag := flag.String("templates", "", "Template directory (uses embedded templates if not specified)")
	tableFlag := flag.String("table", "", "Path to a declaration table (uses embedded gd.yaml if not specified)")

	flag.Parse()

	if *extractTemplates {
		files, err := generator.ExtractEmbeddedFS(generator.EmbeddedFiles, *extractDir)
		if err != nil {
			log.Fatalf("Failed to extract templates: %v", err)
		}
		for _, file := range files {
			fmt.Printf("  - Extracted: %s\n", file)
		}
		fmt.Printf("Templates extracted to: %s\n", *extractDir)
		return
	}

	var loader generator.TemplateLoader
	var err error
	funcMap := generator.GetTemplateFuncMap()

	if *templateDirFlag != "" {
		loader, err = generator.NewOSTemplateLoader(*templateDirFlag, funcMap)
		if err != nil {
			log.Fatalf("Failed to create template loader: %v", err)
		}
		fmt.Printf("Using templates from: %s\n", *templateDirFlag)
	} else {
		loader, err = generator.NewEmbeddedTemplateLoader(funcMap)
		if err != nil {
			log.Fatalf("Failed to create template loader: %v", err)
		}
		fmt.Println("Using embedded templates")
	}

	var table *generator.Table
	if *tableFlag != "" {
		file, err := os.Open(*tableFlag)
		if err != nil {
			log.Fatalf("Failed to open declaration table: %v", err)
		}
		table, err = generator.LoadDeclarations(file)
		file.Close()
		if err != nil {
			log.Fatalf("Failed to load declaration table: %v", err)
		}
		fmt.Printf("Using declaration table: %s\n", *tableFlag)
	} else {
		table, err = generator.DefaultTable()
		if err != nil {
			log.Fatalf("Failed to load embedded declaration table: %v", err)
		}
		fmt.Println("Using embedded declaration table")
	}

	outputDir := *outputDirFlag
	if flag.NArg() > 0 {
		outputDir = flag.Arg(0)
	}

	data := generator.NewTemplateData(table)
	fmt.Printf("Found %d generated and %d hand wrapped declarations\n", len(data.Declarations), len(data.Manual))

	files, err := generator.Generate(loader, data, outputDir)
	if err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("\nSuccessfully generated files from templates: %d\n", len(files))
	for _, file := range files {
		fmt.Printf("  - %s\n", file)
	}
}
