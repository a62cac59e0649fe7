package launcher

import (
	"path/filepath"
	"sort"
	"strings"
)

var editorAliases = map[string]string{
	"code":      "code",
	"vscode":    "code",
	"cursor":    "cursor",
	"vim":       "vim",
	"nvim":      "nvim",
	"neovim":    "nvim",
	"emacs":     "emacs",
	"sublime":   "subl",
	"subl":      "subl",
	"atom":      "atom",
	"idea":      "idea",
	"intellij":  "idea",
	"webstorm":  "webstorm",
	"pycharm":   "pycharm",
	"goland":    "goland",
	"rustrover": "rustrover",
	"zed":       "zed",
	"helix":     "hx",
	"hx":        "hx",
	"nano":      "nano",
	"micro":     "micro",
}

// Editors that take over the terminal and must run attached.
var terminalEditors = map[string]bool{
	"vi":    true,
	"vim":   true,
	"nvim":  true,
	"emacs": true,
	"hx":    true,
	"nano":  true,
	"micro": true,
}

// ResolveAlias maps a known editor alias to its binary name.
// Unknown names are returned unchanged.
func ResolveAlias(editor string) string {
	if bin, ok := editorAliases[strings.ToLower(editor)]; ok {
		return bin
	}
	return editor
}

// Aliases returns every known alias, sorted.
func Aliases() []string {
	names := make([]string, 0, len(editorAliases))
	for name := range editorAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTerminalEditor reports whether bin runs inside the terminal.
func IsTerminalEditor(bin string) bool {
	return terminalEditors[filepath.Base(bin)]
}
