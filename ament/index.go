// Package ament locates installed ROS 2 packages through the ament
// resource index.
package ament

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PrefixPathEnv lists install prefixes, separated by the OS list separator.
const PrefixPathEnv = "AMENT_PREFIX_PATH"

const packagesResource = "share/ament_index/resource_index/packages"

// PackageNotFoundError is returned when no prefix provides a package.
type PackageNotFoundError struct {
	Package string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package '%s' not found", e.Package)
}

// ExecutableNotFoundError is returned when a package has no such executable.
type ExecutableNotFoundError struct {
	Package    string
	Executable string
	Path       string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable '%s' not found on the libexec directory '%s' of package '%s'",
		e.Executable, e.Path, e.Package)
}

// Index resolves packages against an ordered list of install prefixes.
type Index struct {
	fs       afero.Fs
	prefixes []string
}

// NewIndex returns an index over prefixes. Earlier prefixes win.
func NewIndex(fs afero.Fs, prefixes []string) *Index {
	var cleaned []string
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, filepath.Clean(p))
		}
	}
	return &Index{fs: fs, prefixes: cleaned}
}

// NewIndexFromEnv builds an index from AMENT_PREFIX_PATH on the OS filesystem.
func NewIndexFromEnv() *Index {
	return NewIndex(afero.NewOsFs(), SplitPrefixPath(os.Getenv(PrefixPathEnv)))
}

// SplitPrefixPath splits a prefix path list.
func SplitPrefixPath(value string) []string {
	if value == "" {
		return nil
	}
	return filepath.SplitList(value)
}

// Prefixes returns the install prefixes searched by the index.
func (i *Index) Prefixes() []string {
	return append([]string(nil), i.prefixes...)
}

// PackagePrefix returns the install prefix providing pkg.
func (i *Index) PackagePrefix(pkg string) (string, error) {
	if pkg == "" || strings.ContainsAny(pkg, `/\`) {
		return "", &PackageNotFoundError{Package: pkg}
	}
	for _, prefix := range i.prefixes {
		marker := filepath.Join(prefix, filepath.FromSlash(packagesResource), pkg)
		if _, err := i.fs.Stat(marker); err == nil {
			return prefix, nil
		}
	}
	return "", &PackageNotFoundError{Package: pkg}
}

// PackageShare returns the share directory of pkg.
func (i *Index) PackageShare(pkg string) (string, error) {
	prefix, err := i.PackagePrefix(pkg)
	if err != nil {
		return "", err
	}
	return filepath.Join(prefix, "share", pkg), nil
}

// Executable returns the path of an executable installed by pkg.
func (i *Index) Executable(pkg, executable string) (string, error) {
	prefix, err := i.PackagePrefix(pkg)
	if err != nil {
		return "", err
	}
	libexec := filepath.Join(prefix, "lib", pkg)
	path := filepath.Join(libexec, executable)
	info, err := i.fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", &ExecutableNotFoundError{Package: pkg, Executable: executable, Path: libexec}
	}
	return path, nil
}
