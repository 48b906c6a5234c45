// © 2024 Thriftlab
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.thriftlab.org/thriftc/internal/fs"
	"gopkg.thriftlab.org/thriftc/internal/idl"
)

// PathENV is the environment variable holding extra search roots, in the
// usual path list form.
const PathENV = "THRIFTC_PATH"

// NewDefaultFS builds the default search path: the working directory
// followed by every entry of THRIFTC_PATH.
func NewDefaultFS(lookup func(string) (string, bool)) (idl.FileSystem, error) {
	roots := getDefaultRoots(lookup)
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	roots := []string{"."}
	if path, ok := lookup(PathENV); ok {
		for _, root := range strings.Split(path, string(os.PathListSeparator)) {
			if root != "" {
				roots = append(roots, root)
			}
		}
	}
	return roots
}
