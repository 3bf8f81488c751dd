// Package category defines the builtin table of language categories and the
// resolution of CLI selectors (category names and extension literals) into a
// deduplicated extension set.
package category

// Category groups related file extensions under a primary name plus aliases.
// Extension matching is case-sensitive: C and c are distinct entries.
type Category struct {
	// Names holds the primary name first, then any aliases
	Names []string
	// Extensions holds bare extensions without the leading dot
	Extensions []string
}

// Name returns the primary name of the category.
func (c Category) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// builtin is the static category table. Order is preserved for help output.
var builtin = []Category{
	{Names: []string{"rust", "rs"}, Extensions: []string{"rs", "rlib"}},
	{Names: []string{"haskell", "hs"}, Extensions: []string{"hs", "lhs"}},
	{Names: []string{"kotlin", "kt"}, Extensions: []string{"kt", "kts", "kexe", "klib"}},
	{Names: []string{"csharp", "c#", "cdim"}, Extensions: []string{"cs", "csx"}},
	{Names: []string{"java"}, Extensions: []string{"java", "class", "jmod", "war"}},
	{Names: []string{"zig"}, Extensions: []string{"zig", "zir", "zigr", "zon"}},
	{Names: []string{"c"}, Extensions: []string{"c", "h"}},
	{Names: []string{"golang", "go"}, Extensions: []string{"go"}},
	{Names: []string{"cplusplus", "c++", "cpp", "hell"}, Extensions: []string{"c", "C", "cc", "cpp", "cxx", "c++", "h", "H", "hh", "hpp", "hxx", "h++", "cppm", "ixx"}},
	{Names: []string{"web", "webdev"}, Extensions: []string{"js", "jsx", "ts", "tsx", "mjs", "cjs", "css", "scss", "sass", "less", "styl", "vue", "svelte", "astro"}},
	{Names: []string{"react"}, Extensions: []string{"tsx", "jsx"}},
	{Names: []string{"typescript"}, Extensions: []string{"tsx", "ts"}},
	{Names: []string{"javascript"}, Extensions: []string{"jsx", "js"}},
	{Names: []string{"php"}, Extensions: []string{"php", "phar", "phtml", "pht", "phps"}},
	{Names: []string{"ruby"}, Extensions: []string{"rb", "ru"}},
	{Names: []string{"elixir", "ex"}, Extensions: []string{"ex", "exs"}},
	{Names: []string{"python", "py"}, Extensions: []string{"py"}},
	{Names: []string{"shell"}, Extensions: []string{"sh", "bash", "zsh", "fish"}},
	{Names: []string{"styles", "css"}, Extensions: []string{"css", "scss", "sass", "less"}},
	{Names: []string{"config", "cfg"}, Extensions: []string{"toml", "yaml", "yml", "json", "cfg"}},
	{Names: []string{"markup"}, Extensions: []string{"html", "md"}},
}

// Builtin returns a copy of the builtin category table.
func Builtin() []Category {
	table := make([]Category, len(builtin))
	copy(table, builtin)
	return table
}

// Lookup finds a category in table by name or alias.
func Lookup(table []Category, name string) (Category, bool) {
	for _, cat := range table {
		for _, n := range cat.Names {
			if n == name {
				return cat, true
			}
		}
	}
	return Category{}, false
}

// ExtSet is a deduplicated set of extensions preserving first-seen order.
// Order determines the row order of the final report.
type ExtSet struct {
	order []string
	seen  map[string]bool
}

// NewExtSet creates an empty extension set.
func NewExtSet() *ExtSet {
	return &ExtSet{seen: make(map[string]bool)}
}

// Add inserts ext if it has not been seen before.
func (s *ExtSet) Add(ext string) {
	if s.seen[ext] {
		return
	}
	s.seen[ext] = true
	s.order = append(s.order, ext)
}

// AddAll inserts every extension in exts.
func (s *ExtSet) AddAll(exts []string) {
	for _, ext := range exts {
		s.Add(ext)
	}
}

// Contains reports whether ext is in the set.
func (s *ExtSet) Contains(ext string) bool {
	return s.seen[ext]
}

// Len returns the number of distinct extensions.
func (s *ExtSet) Len() int {
	return len(s.order)
}

// Slice returns the extensions in insertion order.
func (s *ExtSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
