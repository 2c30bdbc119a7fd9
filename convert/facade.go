// Package convert is the Conversion Facade + Result Cache (spec.md
// §4.E): it orchestrates the Java front-end and the extractor across
// multiple compilation units, collects partial parse failures, invokes
// every registered generator, and fronts the whole operation with a
// content-fingerprinted, bounded LRU cache.
package convert

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	flanksourceContext "github.com/flanksource/commons/context"
	"golang.org/x/time/rate"

	"github.com/umlforge/javauml/extract"
	"github.com/umlforge/javauml/filterexpr"
	"github.com/umlforge/javauml/generators"
	"github.com/umlforge/javauml/internal/cache"
	"github.com/umlforge/javauml/javaparse"
	"github.com/umlforge/javauml/models"
)

// Option configures a Facade at construction time.
type Option func(*Facade)

// WithRegistry replaces the default three-generator registry.
func WithRegistry(r *generators.Registry) Option {
	return func(f *Facade) { f.registry = r }
}

// WithCacheCapacity overrides the default 128-entry cache bound.
func WithCacheCapacity(n int) Option {
	return func(f *Facade) { f.cache = cache.NewResultCache(n) }
}

// WithFilterExpr sets the optional class-filter expression evaluated by
// package filterexpr before generation (SPEC_FULL.md §4.F). An empty
// expression (the default) is a pass-through.
func WithFilterExpr(expr string) Option {
	return func(f *Facade) { f.filterExpr = expr }
}

// WithRateLimit bounds the rate at which this facade starts cache-miss
// conversions: each miss waits on limiter before parsing (SPEC_FULL.md
// §4.G). The default is unlimited.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(f *Facade) { f.limiter = limiter }
}

// Facade is the single entry point spec.md §4.E describes. A Facade
// value is safe for concurrent use: each cache operation (lookup-and-
// promote, insert-and-evict) is mutex-guarded inside ResultCache. The
// lookup and the later insert are not held under one lock, so
// concurrent misses on the same fingerprint each run the conversion and
// the last insert wins.
type Facade struct {
	registry   *generators.Registry
	cache      *cache.ResultCache
	filterExpr string
	limiter    *rate.Limiter
}

// NewFacade builds a Facade with the default generator registry and a
// 128-entry result cache, customized by opts.
func NewFacade(opts ...Option) *Facade {
	f := &Facade{
		registry: generators.DefaultRegistry(),
		cache:    cache.NewResultCache(cache.MaxEntries),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Convert runs the full pipeline described by spec.md §4.E, steps 1-6.
func (f *Facade) Convert(ctx context.Context, sources []models.SourcePair) models.ConversionResult {
	fc := flanksourceContext.NewContext(ctx)

	fingerprint := Fingerprint(sources)
	if cached, ok := f.cache.Get(fingerprint); ok {
		fc.Debugf("convert: cache hit for %s", fingerprint)
		return cached
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			fc.Warnf("convert: rate limiter wait failed: %v", err)
		}
	}

	var allClasses []models.ClassInfo
	var errs []string

	for _, src := range sources {
		file, err := javaparse.Parse(src.Filename, src.Code)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		allClasses = append(allClasses, extract.Extract(file)...)
	}

	filtered, err := filterexpr.Filter(f.filterExpr, allClasses)
	if err != nil {
		errs = append(errs, err.Error())
	} else {
		allClasses = filtered
	}

	diagrams := make(map[string]string)
	for _, ng := range f.registry.CreateAll() {
		if len(allClasses) == 0 {
			diagrams[ng.Name] = ""
			continue
		}
		diagrams[ng.Name] = generators.Generate(ng.Generator, allClasses)
	}

	result := models.ConversionResult{
		Diagrams: diagrams,
		Errors:   errs,
		Sources:  sources,
	}

	f.cache.Put(fingerprint, result)
	return result
}

// Fingerprint implements spec.md §4.E step 1: SHA-256 over
// "filename:code" pairs concatenated after sorting lexicographically by
// filename, rendered as lowercase hex.
func Fingerprint(sources []models.SourcePair) string {
	sorted := make([]models.SourcePair, len(sources))
	copy(sorted, sources)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Filename != sorted[j].Filename {
			return sorted[i].Filename < sorted[j].Filename
		}
		return sorted[i].Code < sorted[j].Code
	})

	var b strings.Builder
	for _, s := range sorted {
		b.WriteString(s.Filename)
		b.WriteString(":")
		b.WriteString(s.Code)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
