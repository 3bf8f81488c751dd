package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreRule is a single .gitignore pattern. Negation patterns ("!pattern")
// are compiled without the leading bang and flagged, so a later rule can
// re-include a path an earlier one excluded.
type ignoreRule struct {
	matcher *ignore.GitIgnore
	negate  bool
}

// ignoreScope holds the rules of one .gitignore file together with the
// directory it was found in, relative to the walk root ("" for the root
// itself).
type ignoreScope struct {
	base  string
	rules []ignoreRule
}

// decide applies the scope's rules to sub in file order. The last matching
// rule wins, mirroring git. The second return reports whether any rule
// matched at all.
func (sc ignoreScope) decide(sub string) (excluded, matched bool) {
	for _, r := range sc.rules {
		if r.matcher.MatchesPath(sub) {
			excluded = !r.negate
			matched = true
		}
	}
	return excluded, matched
}

// ignoreStack accumulates .gitignore files as the walk descends. Rules from
// a file apply only below its directory, and files in deeper directories
// take precedence over files above them, so a nested "!pattern" can
// re-include a path an outer file excluded.
type ignoreStack struct {
	root   string
	scopes []ignoreScope
}

func newIgnoreStack(root string) *ignoreStack {
	return &ignoreStack{root: root}
}

// load parses dir/.gitignore if it exists and pushes its rules onto the
// stack.
func (s *ignoreStack) load(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error accessing %s: %w", path, err)
	}

	base, err := filepath.Rel(s.root, dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if base == "." {
		base = ""
	}

	s.scopes = append(s.scopes, ignoreScope{base: base, rules: parseRules(data)})
	return nil
}

// parseRules splits a .gitignore file into per-pattern rules so negations
// can be tracked individually.
func parseRules(data []byte) []ignoreRule {
	var rules []ignoreRule
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negate := strings.HasPrefix(line, "!")
		pattern := strings.TrimPrefix(line, "!")
		rules = append(rules, ignoreRule{
			matcher: ignore.CompileIgnoreLines(pattern),
			negate:  negate,
		})
	}
	return rules
}

// ignored reports whether the path at rel (relative to the walk root) is
// excluded by the accumulated .gitignore rules. Directories are tested with
// a trailing slash so dir-only patterns like "build/" apply.
func (s *ignoreStack) ignored(rel string, isDir bool) bool {
	excluded := false
	for _, sc := range s.scopes {
		sub := rel
		if sc.base != "" {
			prefix := sc.base + string(filepath.Separator)
			if !strings.HasPrefix(rel, prefix) {
				continue
			}
			sub = rel[len(prefix):]
		}

		sub = filepath.ToSlash(sub)
		if isDir {
			sub += "/"
		}

		// scopes are pushed outermost first, so a deeper file's
		// decision overrides the ones above it
		if ex, matched := sc.decide(sub); matched {
			excluded = ex
		}
	}

	return excluded
}
