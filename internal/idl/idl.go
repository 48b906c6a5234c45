package idl

import (
	"context"
	"fmt"

	"gopkg.thriftlab.org/thriftc/internal/optional"
	"gopkg.thriftlab.org/thriftc/internal/thrift"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

// Location is a position within a source file. Line and Column are
// 1-based, Offset is a 0-based byte offset.
type Location struct {
	Line   int32
	Column int32
	Offset int64
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindThrift
)

func (k FileKind) String() string {
	switch k {
	case FileKindThrift:
		return "thrift"
	case FileKindNone:
		return "none"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	Files    []string
	DumpTree bool
}

type CompileResponse struct {
	Image *Image
}

// Image is the set of modules produced by a compile run.
type Image struct {
	Modules []*Module
}

// Module is one parsed source file. Document is the owned form of the
// AST: it does not reference the source buffer, which is released as
// soon as the per-file parse completes.
type Module struct {
	URI      string
	Document *thrift.Document
}
