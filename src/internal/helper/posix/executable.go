// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is used when the invocation name cannot be determined.
const DefaultName = "check-openssl-ca"

// GetExecutableName returns the name the program was invoked as, without
// directories or a trailing ".exe". Monitoring hosts often install plugins
// under their own names, so the usage line reflects argv[0] rather than a
// fixed string.
func GetExecutableName() string { return ExecutableName(os.Args) }

// ExecutableName is [GetExecutableName] for an explicit argument vector.
//
//   - Linux/macOS: "check_ca" from "/usr/lib/nagios/plugins/check_ca"
//   - Windows: "check_ca" from "C:\plugins\check_ca.exe"
//   - Fallback: [DefaultName] when args is empty
func ExecutableName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return DefaultName
	}

	name := filepath.Base(args[0])

	// filepath.Base only knows the host separator; a Windows path seen on
	// Unix (or the reverse) still needs splitting.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultName
	}
	return name
}
