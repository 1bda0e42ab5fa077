// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"taxon-scan/internal/config"
	"taxon-scan/internal/formatters"
	_ "taxon-scan/internal/formatters/text"
	"taxon-scan/internal/observability"
	"taxon-scan/internal/paths"
	"taxon-scan/internal/pdftext"
	"taxon-scan/internal/taxonomy"
	"taxon-scan/internal/version"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const usageLine = "Uso: taxon-scan <caminho_do_arquivo_pdf>"

// runSettings holds the resolved configuration for one run
type runSettings struct {
	pdfPath          string
	outputPath       string
	noColor          bool
	verbose          bool
	debug            bool
	maxPages         int
	strictValidation bool
}

func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFile := flag.String("output", "", "Path to the result file (default: "+config.DefaultOutputFile+")")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	verbose := flag.Bool("verbose", false, "Display page and match counts after the report")
	debug := flag.Bool("debug", false, "Enable debug logging of extraction and scan timings")
	strict := flag.Bool("strict", false, "Validate the PDF structure before extraction")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Usage = func() {
		fmt.Println(usageLine)
		fmt.Println()
		fmt.Println("Opções:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println(usageLine)
		os.Exit(1)
	}

	cfg := config.LoadConfigOrDefault(*configFile)
	settings := resolveSettings(cfg, args[0], *outputFile, *noColor, *verbose, *debug, *strict)

	os.Exit(run(settings))
}

// resolveSettings merges config file values with command line flags.
// Flags explicitly set on the command line take precedence.
func resolveSettings(cfg *config.Config, pdfPath, outputFile string, noColor, verbose, debug, strict bool) runSettings {
	settings := runSettings{
		pdfPath:          pdfPath,
		outputPath:       paths.ResolveOutputPath(cfg.Defaults.Output, cfg.Defaults.OutputDir),
		noColor:          cfg.Defaults.NoColor,
		verbose:          cfg.Defaults.Verbose,
		debug:            cfg.Defaults.Debug,
		maxPages:         cfg.Defaults.MaxPages,
		strictValidation: cfg.Defaults.StrictValidation,
	}

	if outputFile != "" {
		settings.outputPath = paths.ResolveOutputPath(outputFile, cfg.Defaults.OutputDir)
	}
	if isFlagSet("no-color") {
		settings.noColor = noColor
	}
	if isFlagSet("verbose") {
		settings.verbose = verbose
	}
	if isFlagSet("debug") {
		settings.debug = debug
	}
	if isFlagSet("strict") {
		settings.strictValidation = strict
	}

	// Colors make no sense when stdout is redirected
	if !isTerminal(os.Stdout) {
		settings.noColor = true
	}

	return settings
}

// run executes the scan pipeline and returns the process exit code
func run(settings runSettings) int {
	errColor := color.New(color.FgRed)
	if settings.noColor {
		color.NoColor = true
	}

	var observer *observability.StandardObserver
	if settings.debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
	}

	doc, err := pdftext.Open(settings.pdfPath, pdftext.Options{
		StrictValidation: settings.strictValidation,
		MaxPages:         settings.maxPages,
	})
	if err != nil {
		var notFound *pdftext.NotFoundError
		if errors.As(err, &notFound) {
			errColor.Printf("Erro: Arquivo não encontrado no caminho: %s\n", notFound.Path)
			return 1
		}
		errColor.Printf("Erro ao abrir o PDF: %v\n", err)
		return 1
	}
	defer doc.Close()

	scanner := taxonomy.NewScanner()
	scanner.SetObserver(observer)

	result, err := scanner.Scan(doc)
	if err != nil {
		errColor.Printf("Erro ao processar o PDF: %v\n", err)
		return 1
	}

	// File rendering is always plain text
	fileContent, err := formatters.Export("text", result, formatters.Options{NoColor: true})
	if err != nil {
		errColor.Printf("Erro ao formatar os resultados: %v\n", err)
		return 1
	}

	if err := os.WriteFile(settings.outputPath, []byte(fileContent), 0644); err != nil {
		// Console echo below is the fallback delivery channel
		errColor.Printf("Erro ao escrever o arquivo de saída: %v\n", err)
	} else {
		fmt.Printf("\nResultados salvos em: %s\n", settings.outputPath)
	}

	consoleContent, err := formatters.Export("text", result, formatters.Options{
		NoColor: settings.noColor,
		Verbose: settings.verbose,
	})
	if err != nil {
		errColor.Printf("Erro ao formatar os resultados: %v\n", err)
		return 1
	}

	fmt.Println()
	fmt.Print(consoleContent)
	fmt.Println("\nProcessamento concluído.")

	return 0
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
