package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// UploadValidator checks uploaded asset names before they touch the disk
type UploadValidator struct {
	blockedExts map[string]bool
	maxBytes    int64
	unsafe      *regexp.Regexp
}

// NewUploadValidator creates a new upload validator. maxBytes <= 0 disables the size check.
func NewUploadValidator(maxBytes int64) *UploadValidator {
	blocked := []string{
		".exe", ".dll", ".bat", ".cmd", ".com", ".msi",
		".sh", ".ps1", ".jar", ".scr", ".vbs",
	}

	exts := make(map[string]bool, len(blocked))
	for _, ext := range blocked {
		exts[ext] = true
	}

	return &UploadValidator{
		blockedExts: exts,
		maxBytes:    maxBytes,
		unsafe:      regexp.MustCompile(`[^\p{L}\p{N}._ -]+`),
	}
}

// ValidationError represents an upload validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the original file name and size of an upload
func (v *UploadValidator) Validate(name string, size int64) error {
	base := strings.TrimSpace(filepath.Base(filepath.Clean("/" + name)))
	if base == "" || base == "/" || base == "." {
		return &ValidationError{Message: "file name is required"}
	}

	if v.blockedExts[Extension(base)] {
		return &ValidationError{Message: fmt.Sprintf("file type %s is not allowed", Extension(base))}
	}

	if size <= 0 {
		return &ValidationError{Message: "file is empty"}
	}

	if v.maxBytes > 0 && size > v.maxBytes {
		return &ValidationError{Message: fmt.Sprintf("file exceeds %d bytes", v.maxBytes)}
	}

	return nil
}

// SanitizeName strips directories and unsafe characters from an upload name
func (v *UploadValidator) SanitizeName(name string) string {
	base := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, `\`, "/")))
	if base == "/" || base == "." {
		return "file"
	}
	return strings.TrimSpace(v.unsafe.ReplaceAllString(base, "_"))
}

// Extension returns the lower-case extension of name including the dot
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
