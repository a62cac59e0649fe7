// Package launcher opens project directories in external editors.
//
// Editor names are resolved through a small alias table (vscode, neovim,
// intellij, ...) and may carry arguments ("code --new-window"), which are
// split with shell-word rules. Terminal editors such as vim run attached
// to the current terminal and the launcher waits for them; GUI editors are
// started and released.
package launcher
