package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestViewModelsAreUIFree ensures the view-model packages never import
// the terminal UI stack, so they stay testable without a screen.
func TestViewModelsAreUIFree(t *testing.T) {
	forbiddenPrefixes := []string{
		"ftlview/internal/tui",        // No TUI internals
		"ftlview/internal/components", // No UI helpers
		"ftlview/internal/theme",      // No colours
		"github.com/rivo/tview",
		"github.com/gdamore/tcell",
	}

	for _, dir := range []string{"./data", "./resolve", "./sectors", "./eventtree", "./detail", "./anim", "./catalog", "./config", "./log"} {
		checkImports(t, dir, nil, forbiddenPrefixes)
	}
}

// TestTUIImportRestrictions ensures TUI only reaches data through the
// view-models
func TestTUIImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"ftlview/internal/anim",       // Sprite frames and stepper
		"ftlview/internal/catalog",    // Found-in lookups (app only)
		"ftlview/internal/components", // UI components (shared)
		"ftlview/internal/config",     // Configuration
		"ftlview/internal/data",       // Domain types and loader
		"ftlview/internal/detail",     // Detail panel view-model
		"ftlview/internal/eventtree",  // Event tree view-model
		"ftlview/internal/log",        // Logging
		"ftlview/internal/resolve",    // Blueprint lookups
		"ftlview/internal/sectors",    // Navigation buckets
		"ftlview/internal/theme",      // UI theming
		"ftlview/internal/tui",        // TUI can import its own subpackages
		"github.com/",                 // Third-party packages
		"golang.org/",                 // Standard library extensions
	}

	checkImports(t, "./tui", allowedPrefixes, nil)
}

// TestComponentsDoNotQueryCatalog keeps SQL out of the widgets; only the
// app wires the catalog into the detail panel.
func TestComponentsDoNotQueryCatalog(t *testing.T) {
	forbiddenPrefixes := []string{
		"ftlview/internal/catalog",
		"modernc.org/sqlite",
		"github.com/Masterminds/squirrel",
	}

	checkImports(t, "./tui/components", nil, forbiddenPrefixes)
	checkImports(t, "./tui/handlers", nil, forbiddenPrefixes)
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Check forbidden imports
			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			// Standard library is always allowed
			if !strings.Contains(importPath, ".") && !strings.HasPrefix(importPath, "ftlview/") {
				continue
			}

			// Check allowed imports (if specified)
			if len(allowedPrefixes) > 0 {
				allowed := false
				for _, prefix := range allowedPrefixes {
					if strings.HasPrefix(importPath, prefix) {
						allowed = true
						break
					}
				}
				if !allowed {
					t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
				}
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
