package cmd

import (
	"fmt"
	"strings"

	"github.com/c1ph3rc4t/clc/internal/category"
)

// genHelp renders the full help text including an aligned category table.
func genHelp(table []category.Category) string {
	var catNames []string
	var extLists []string
	longest := 0

	for _, cat := range table {
		names := strings.Join(cat.Names, "/")
		exts := strings.Join(cat.Extensions, ", ")
		if len(names) > longest {
			longest = len(names)
		}
		catNames = append(catNames, names)
		extLists = append(extLists, exts)
	}

	var catList strings.Builder
	catList.WriteString("Categories:")
	for i, names := range catNames {
		fmt.Fprintf(&catList, "\n  %s%s | %s", names, strings.Repeat(" ", longest-len(names)), extLists[i])
	}

	return fmt.Sprintf(`Usage: clc [OPTION | CATEGORY | .EXT]...
Count non-empty lines of code in files matching CATEGORY or .EXT, recursively.
Example: clc -g .py web -d2 .rs

Arguments may be given in any order:
  starting with '-'         option
  starting with '.'         file extension
  otherwise                 category

Options:
      --help                display this help text and exit
  -v, --version             display version and exit
  -dN                       set maximum search depth to N
  -g, --git                 respect .gitignore files
  -h, --hidden              include hidden files and directories
      --cache               reuse per-file counts from the cache
      --output=FILE         also write the report to FILE
      --verbose             log per-file progress to stderr

%s`, catList.String())
}
