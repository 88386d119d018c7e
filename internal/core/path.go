package core

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

const IndexPath = "index.html"

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// RouteForPath maps a template output path to the URL it is served at.
func RouteForPath(outputPath string) string {
	if outputPath == IndexPath {
		return "/"
	}
	return NormalizePath(outputPath)
}

// ValidateOutputPath rejects template paths that could escape the output
// directory or that are not plain relative file paths.
func ValidateOutputPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must be relative")
	}

	if strings.Contains(p, "\\") {
		return fmt.Errorf("path cannot contain backslashes")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("path cannot contain parent directory references")
		}
	}

	if path.Clean(p) != p {
		return fmt.Errorf("path must be clean")
	}

	return nil
}

func OutputFile(outDir, outputPath string) string {
	return filepath.Join(outDir, filepath.FromSlash(outputPath))
}
