package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/umlforge/javauml/cliconfig"
	"github.com/umlforge/javauml/convert"
	"github.com/umlforge/javauml/extract"
	"github.com/umlforge/javauml/filterexpr"
	"github.com/umlforge/javauml/generators"
	"github.com/umlforge/javauml/internal/cache/diskcache"
	"github.com/umlforge/javauml/javaparse"
	"github.com/umlforge/javauml/models"
)

var (
	convertOutDir     string
	convertFilterExpr string
	convertDiskCache  bool
	convertCacheDir   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <dir-or-files...>",
	Short: "Convert Java sources into PlantUML diagrams",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", ".", "directory to write <name>.puml files into")
	convertCmd.Flags().StringVar(&convertFilterExpr, "filter", "", "optional gomplate template expression narrowing the class set")
	convertCmd.Flags().BoolVar(&convertDiskCache, "disk-cache", false, "cache per-file extraction results on disk across runs")
	convertCmd.Flags().StringVar(&convertCacheDir, "disk-cache-dir", "", "directory for the on-disk parse cache (default: ~/.cache/javauml)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := cliconfig.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if convertFilterExpr != "" {
		cfg.FilterExpr = convertFilterExpr
	}
	if convertDiskCache {
		cfg.DiskCache = true
	}
	if convertCacheDir != "" {
		cfg.DiskCacheDir = convertCacheDir
	}

	sources, err := discoverSources(args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no .java files found in %v", args)
	}

	var result models.ConversionResult
	if cfg.DiskCache {
		result, err = convertWithDiskCache(sources, cfg)
	} else {
		result = convertInProcess(sources, cfg)
	}
	if err != nil {
		return err
	}

	if err := writeDiagrams(result, convertOutDir); err != nil {
		return err
	}

	printSummary(result)
	return nil
}

func discoverSources(args []string) ([]models.SourcePair, error) {
	var sources []models.SourcePair

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			code, err := os.ReadFile(arg)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", arg, err)
			}
			sources = append(sources, models.SourcePair{Filename: filepath.Base(arg), Code: string(code)})
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(arg), "**/*.java")
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", arg, err)
		}
		for _, rel := range matches {
			code, err := os.ReadFile(filepath.Join(arg, rel))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", rel, err)
			}
			sources = append(sources, models.SourcePair{Filename: rel, Code: string(code)})
		}
	}

	return sources, nil
}

// convertInProcess exercises the library's own content-addressed result
// cache (spec.md §4.E) — the path the CLI takes by default.
func convertInProcess(sources []models.SourcePair, cfg cliconfig.Config) models.ConversionResult {
	var opts []convert.Option
	opts = append(opts, convert.WithCacheCapacity(cfg.CacheCapacity))
	if cfg.FilterExpr != "" {
		opts = append(opts, convert.WithFilterExpr(cfg.FilterExpr))
	}
	if cfg.RateLimitPerSecond > 0 {
		opts = append(opts, convert.WithRateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), 1)))
	}

	facade := convert.NewFacade(opts...)
	return facade.Convert(context.Background(), sources)
}

// convertWithDiskCache bypasses the facade's per-call parsing so a
// second invocation across process runs can skip javaparse+extract for
// unchanged files (SPEC_FULL.md §4.H). It reimplements the facade's
// assembly steps directly over the disk-cache-backed class lists.
func convertWithDiskCache(sources []models.SourcePair, cfg cliconfig.Config) (models.ConversionResult, error) {
	cacheDir := cfg.DiskCacheDir
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return models.ConversionResult{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".cache", "javauml")
	}

	db, err := diskcache.Open(cacheDir)
	if err != nil {
		return models.ConversionResult{}, err
	}
	defer db.Close()

	var allClasses []models.ClassInfo
	var errs []string

	for _, src := range sources {
		fp := diskcache.Fingerprint(src.Filename, src.Code)

		if classes, hit, err := db.Lookup(fp); err == nil && hit {
			allClasses = append(allClasses, classes...)
			continue
		}

		file, err := javaparse.Parse(src.Filename, src.Code)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		classes := extract.Extract(file)
		allClasses = append(allClasses, classes...)

		if err := db.Store(fp, classes); err != nil {
			errs = append(errs, fmt.Sprintf("%s: disk cache store failed: %v", src.Filename, err))
		}
	}

	filtered, err := filterexpr.Filter(cfg.FilterExpr, allClasses)
	if err != nil {
		errs = append(errs, err.Error())
	} else {
		allClasses = filtered
	}

	diagrams := make(map[string]string)
	for _, ng := range generators.DefaultRegistry().CreateAll() {
		if len(allClasses) == 0 {
			diagrams[ng.Name] = ""
			continue
		}
		diagrams[ng.Name] = generators.Generate(ng.Generator, allClasses)
	}

	return models.ConversionResult{Diagrams: diagrams, Errors: errs, Sources: sources}, nil
}

func writeDiagrams(result models.ConversionResult, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for name, diagram := range result.Diagrams {
		path := filepath.Join(outDir, name+".puml")
		if err := os.WriteFile(path, []byte(diagram+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

var summaryHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

func printSummary(result models.ConversionResult) {
	fmt.Println(summaryHeading.Render(fmt.Sprintf("javauml: %d source file(s), %d diagram(s)",
		len(result.Sources), len(result.Diagrams))))

	for _, err := range result.Errors {
		fmt.Printf("  %s %s\n", color.RedString("error:"), err)
	}
	if len(result.Errors) == 0 {
		fmt.Println("  " + color.GreenString("no parse errors"))
	}

	names := make([]string, 0, len(result.Diagrams))
	for name := range result.Diagrams {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("  generators: %s\n", strings.Join(names, ", "))
}
