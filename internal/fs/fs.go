// © 2024 Thriftlab
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"gopkg.thriftlab.org/thriftc/internal/exc"
	"gopkg.thriftlab.org/thriftc/internal/idl"
)

const thriftExt = ".thrift"

var knownExts = map[string]idl.FileKind{
	thriftExt: idl.FileKindThrift,
}

var _ idl.FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations that
// are tried in order, typically one per --root flag. It does not
// implement write operations; those must be performed on individual
// backends.
type FileSystemMulti []idl.FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]idl.File, error) {
	for _, backend := range r {
		files, err := backend.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

func (r FileSystemMulti) Write(ctx context.Context, uri string, content string) error {
	return exc.New(exc.Location{URI: uri}, exc.CodeUnsuportedFileSystemOperation, "cannot write to a composite file system")
}

// FileFilter selects which files to open when the path being opened is a
// directory. Implementations return true when the file should be opened.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSBackend installs a custom afero backend rooted at the
// search root. The default is the OS file system. Tests use an in-memory
// backend.
func WithOptionFSBackend(v func(root string) afero.Fs) FileSystemLocalOption {
	return func(lfs *fileSystemLocal) {
		lfs.backend = v
	}
}

// WithOptionFileFilter installs a custom filter used to select files when
// a target is a directory. The default keeps files with the .thrift
// extension.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(lfs *fileSystemLocal) {
		lfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	backend    func(root string) afero.Fs
	fileFilter FileFilter
}

// NewFileSystemLocal creates a FileSystem serving files below root. All
// paths given to Open and Write are relative to the root.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (idl.FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root: absroot,
		backend: func(root string) afero.Fs {
			return afero.NewBasePathFs(afero.NewOsFs(), root)
		},
		fileFilter: func(ctx context.Context, fname string) bool {
			return knownExts[filepath.Ext(fname)] != idl.FileKindNone
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]idl.File, error) {
	path := uri
	u, err := url.Parse(uri)
	if err == nil {
		path = u.Path
	}
	path = filepath.Clean(filepath.Join("/", path))
	if path == "" {
		path = "/"
	}

	dir := r.backend(r.root)
	stat, err := dir.Stat(path)
	if err != nil {
		return nil, fsErr(path, err)
	}
	if !stat.IsDir() {
		return []idl.File{r.file(dir, path)}, nil
	}
	entries, err := afero.ReadDir(dir, path)
	if err != nil {
		return nil, fsErr(path, err)
	}
	files := make([]idl.File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !r.fileFilter(ctx, entry.Name()) {
			continue
		}
		files = append(files, r.file(dir, filepath.Join(path, entry.Name())))
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: path}, exc.CodeFileNotFound, fmt.Sprintf("found directory %s but it contains no thrift files", path))
	}
	return files, nil
}

func (r *fileSystemLocal) file(dir afero.Fs, path string) idl.File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return dir.Open(path)
	}, knownExts[filepath.Ext(path)])
}

func (r *fileSystemLocal) Write(ctx context.Context, uri string, content string) error {
	path := uri
	u, err := url.Parse(uri)
	if err == nil {
		path = u.Path
	}
	path = filepath.Clean(filepath.Join("/", path))

	dir := r.backend(r.root)
	if err := dir.MkdirAll(filepath.Dir(path), os.ModeDir|0o755); err != nil {
		return fsErr(filepath.Dir(path), err)
	}
	if err := afero.WriteFile(dir, path, []byte(content), 0o644); err != nil {
		return fsErr(path, err)
	}
	return nil
}

func fsErr(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
	case os.IsPermission(err):
		return exc.Wrap(exc.Location{URI: path}, exc.CodePermissionDenied, err)
	default:
		return exc.WrapUnknown(exc.Location{URI: path}, err)
	}
}
