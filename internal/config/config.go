// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// AuditDBPath resolves the audit log location: the configured path when set,
// otherwise ~/.local/share/tankboard/audit.db.
func AuditDBPath() string {
	if p := viper.GetString("audit.db_path"); p != "" {
		return ExpandPath(p)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "audit.db"
	}
	return filepath.Join(home, ".local", "share", "tankboard", "audit.db")
}

// Theme returns the configured TUI theme name.
func Theme() string {
	return viper.GetString("ui.theme")
}

// Actor returns the operator name recorded in audit entries. Falls back to
// the OS user when unset.
func Actor() string {
	if a := viper.GetString("audit.actor"); a != "" {
		return a
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "operator"
}
