package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/c1ph3rc4t/clc/internal/cache"
	"github.com/c1ph3rc4t/clc/internal/category"
	"github.com/c1ph3rc4t/clc/internal/config"
	"github.com/c1ph3rc4t/clc/internal/counter"
	"github.com/c1ph3rc4t/clc/internal/logger"
	"github.com/c1ph3rc4t/clc/internal/report"
	"github.com/c1ph3rc4t/clc/internal/walker"
)

// runCount executes the counting pipeline: resolve selectors, walk the
// working directory, count matched files, print the report.
func runCount(opts *options, out, errOut io.Writer) error {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewConsole(errOut, level)

	table, err := loadCategoryTable(log)
	if err != nil {
		return err
	}

	exts, err := resolveSelectors(table, opts)
	if err != nil {
		return err
	}

	result, err := walker.Walk(".", walker.Options{
		Extensions:       exts.Slice(),
		IncludeHidden:    opts.hidden,
		RespectGitignore: opts.git,
		MaxDepth:         opts.maxDepth,
	})
	if err != nil {
		return err
	}
	for _, werr := range result.Errors {
		log.Warnf("%v", werr)
	}

	store := openCache(opts, log)
	if store != nil {
		defer store.Close()
	}

	tally := report.NewTally(exts.Slice())
	for _, path := range result.Files {
		lines, err := countOne(store, path, log)
		if err != nil {
			log.Warnf("skipping %s: %v", path, err)
			continue
		}
		log.Debugf("%s: %d", path, lines)
		tally.Add(walker.FileExt(filepath.Base(path)), lines)
	}

	tally.Fprint(out)

	if store != nil {
		if n, err := store.Prune(); err != nil {
			log.Warnf("%v", err)
		} else if n > 0 {
			log.Debugf("pruned %d stale cache entries", n)
		}
	}

	if opts.output != "" {
		return tally.WriteFile(opts.output)
	}
	return nil
}

// loadCategoryTable merges user-defined categories over the builtin table.
// An unreachable clc home only costs the user categories; a present but
// malformed config file is an error.
func loadCategoryTable(log *logger.Console) ([]category.Category, error) {
	path, err := config.DefaultConfigPath()
	if err != nil {
		log.Warnf("user config unavailable: %v", err)
		return category.Builtin(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.CategoryTable(), nil
}

// resolveSelectors turns category names and .ext literals into the
// deduplicated extension set, preserving selector order.
func resolveSelectors(table []category.Category, opts *options) (*category.ExtSet, error) {
	exts := category.NewExtSet()

	for _, name := range opts.categories {
		cat, ok := category.Lookup(table, name)
		if !ok {
			return nil, usageErrorf("category %s not found", name)
		}
		exts.AddAll(cat.Extensions)
	}

	for _, lit := range opts.extLiterals {
		exts.Add(strings.TrimPrefix(lit, "."))
	}

	if exts.Len() == 0 {
		return nil, usageErrorf("missing operand")
	}

	return exts, nil
}

// openCache opens the count cache when requested. Failures degrade to
// uncached counting with a warning rather than failing the run.
func openCache(opts *options, log *logger.Console) *cache.Store {
	if !opts.cache {
		return nil
	}

	path, err := config.DefaultCachePath()
	if err == nil {
		var store *cache.Store
		if store, err = cache.Open(path); err == nil {
			return store
		}
	}

	log.Warnf("cache disabled: %v", err)
	return nil
}

// countOne counts a single file, consulting the cache when enabled. Cache
// errors are warnings; the count itself still happens.
func countOne(store *cache.Store, path string, log *logger.Console) (uint64, error) {
	if store == nil {
		return counter.CountFile(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	size := info.Size()
	mtime := info.ModTime().UnixNano()

	if lines, ok, err := store.Lookup(abs, size, mtime); err != nil {
		log.Warnf("%v", err)
	} else if ok {
		log.Debugf("cache hit: %s", path)
		return lines, nil
	}

	lines, err := counter.CountFile(path)
	if err != nil {
		return 0, err
	}

	if err := store.Put(cache.Entry{
		Path:    abs,
		Size:    size,
		MTimeNS: mtime,
		Ext:     walker.FileExt(filepath.Base(path)),
		Lines:   lines,
	}); err != nil {
		log.Warnf("%v", err)
	}

	return lines, nil
}
