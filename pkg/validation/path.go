// Package validation provides input validation functions for security-critical operations.
// These functions implement defense-in-depth against path traversal and injection attacks.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Username validation per the POSIX portable filename character set:
// - Letters, digits, dots, underscores and hyphens
// - Must not start with a hyphen (it would read as an installer flag)
// - A trailing $ is accepted for machine accounts
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]*\$?$`)

// Snapshot ID validation:
// - Format: standard UUID (e.g., 550e8400-e29b-41d4-a716-446655440000)
var snapshotIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// MaxUsernameLength is the maximum allowed length for user names.
const MaxUsernameLength = 32

// ValidateUsername validates an OS user name passed to the crontab installer.
func ValidateUsername(name string) error {
	if name == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(name) > MaxUsernameLength {
		return fmt.Errorf("username too long: %d chars (max %d)", len(name), MaxUsernameLength)
	}

	if !usernameRegex.MatchString(name) {
		return fmt.Errorf("invalid username format: must contain only letters, digits, and separators (., _, -) and not start with a hyphen")
	}

	return nil
}

// ValidateSnapshotID validates a snapshot identifier.
// IDs are generated locally but come back from the command line.
func ValidateSnapshotID(id string) error {
	if id == "" {
		return fmt.Errorf("snapshot id cannot be empty")
	}

	// Check for path traversal attempts
	if strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("snapshot id contains path traversal sequence")
	}

	if !snapshotIDRegex.MatchString(id) {
		return fmt.Errorf("invalid snapshot id format")
	}

	return nil
}

// ValidatePathWithinRoot validates that a constructed path stays within the root directory.
// This provides defense-in-depth after filepath.Join operations.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	cleanRoot := filepath.Clean(rootDir)
	cleanPath := filepath.Clean(fullPath)

	// Ensure the path starts with the root directory
	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return fmt.Errorf("path escapes root directory")
	}

	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory. Other
// paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}
