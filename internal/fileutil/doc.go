// Package fileutil provides directory scanning over an afero filesystem.
//
// ScanDirectory walks a directory and returns the file paths it finds in sorted order, collecting non-fatal errors instead of
// aborting the walk.
//
// # Options
//
// ScanOptions configures the scan:
//   - Recursive: descend into subdirectories
//   - ExcludeDirs: directory names to skip
//   - MaxDepth: recursion limit (0 = unlimited, 1 = current dir only)
//
// Hidden directories (names starting with ".") are always skipped.
//
// # Usage
//
//	result, err := fileutil.ScanDirectory(afero.NewOsFs(), "/path/to/export", fileutil.ScanOptions{
//	    Recursive:   true,
//	    ExcludeDirs: []string{"node_modules"},
//	    MaxDepth:    2,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, file := range result.Files {
//	    fmt.Println(file)
//	}
//
// Only a missing root or a root that is not a directory fails the scan. Per-entry access errors are returned in ScanResult.Errors.
package fileutil
