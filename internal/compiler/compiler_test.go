package compiler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"gopkg.thriftlab.org/thriftc/internal/exc"
	"gopkg.thriftlab.org/thriftc/internal/fs"
	"gopkg.thriftlab.org/thriftc/internal/idl"
)

func testFS(t *testing.T, files map[string]string) idl.FileSystem {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.Nil(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	lfs, err := fs.NewFileSystemLocal("/", fs.WithOptionFSBackend(func(string) afero.Fs {
		return mem
	}))
	require.Nil(t, err)
	return lfs
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCompile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	virtual := testFS(t, map[string]string{
		"/users.thrift": `
namespace go example.users

struct User {
	1: required i64 id
	2: optional string name
}

service UserService {
	User getUser(1: i64 id)
}
`,
		"/shared.thrift": `
const i32 VERSION = 1;
enum Lang { GO RUST }
`,
		"/notes.txt": "not thrift",
	})

	c, err := New(
		OptionWithFS(virtual),
		OptionWithMaxConcurrency(2),
		OptionWithLogger(quietLogger()),
	)
	require.Nil(t, err)

	// The .txt target opens fine but is dropped by the kind filter.
	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files: []string{"/users.thrift", "/shared.thrift", "/notes.txt"},
	})
	require.Nil(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Image.Modules, 2)

	byURI := make(map[string]*idl.Module, len(out.Image.Modules))
	for _, mod := range out.Image.Modules {
		byURI[mod.URI] = mod
	}
	users := byURI["/users.thrift"]
	require.NotNil(t, users)
	require.Len(t, users.Document.Namespaces, 1)
	require.Len(t, users.Document.Definitions, 2)
	shared := byURI["/shared.thrift"]
	require.NotNil(t, shared)
	require.Len(t, shared.Document.Definitions, 2)
}

func TestCompileDirectoryTarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	virtual := testFS(t, map[string]string{
		"/idl/a.thrift": "typedef i64 A",
		"/idl/b.thrift": "typedef i64 B",
		"/idl/readme":   "skip me",
	})

	c, err := New(OptionWithFS(virtual), OptionWithLogger(quietLogger()))
	require.Nil(t, err)

	out, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"/idl"}})
	require.Nil(t, err)
	require.Len(t, out.Image.Modules, 2)
}

func TestCompileSyntaxError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	virtual := testFS(t, map[string]string{
		"/good.thrift": "struct Ok {}",
		"/bad.thrift":  "struct Broken {\n\t1: }\n",
	})

	reporter := exc.NewReporter(nil)
	c, err := New(
		OptionWithFS(virtual),
		OptionWithExcReporter(reporter),
		OptionWithLogger(quietLogger()),
	)
	require.Nil(t, err)

	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files: []string{"/good.thrift", "/bad.thrift"},
	})
	require.NotNil(t, err)
	var multi MultiException
	require.True(t, errors.As(err, &multi))
	require.Len(t, multi, 1)
	require.Equal(t, exc.CodeSyntaxIncomplete, multi[0].Code())
	require.Equal(t, "/bad.thrift", multi[0].Location().URI)
	require.Equal(t, int32(2), multi[0].Location().Line)
	require.Equal(t, int32(5), multi[0].Location().Column)

	// The good file still compiles.
	require.Len(t, out.Image.Modules, 1)
	require.Equal(t, "/good.thrift", out.Image.Modules[0].URI)
}

func TestCompileMissingFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, err := New(OptionWithFS(testFS(t, nil)), OptionWithLogger(quietLogger()))
	require.Nil(t, err)

	_, err = c.Compile(ctx, &idl.CompileRequest{Files: []string{"/absent.thrift"}})
	require.NotNil(t, err)
	ex, ok := err.(exc.Exception)
	require.True(t, ok)
	require.Equal(t, exc.CodeFileNotFound, ex.Code())
}

func TestCompileDumpTree(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	virtual := testFS(t, map[string]string{
		"/a.thrift": "const i32 N = 9",
	})

	var buf bytes.Buffer
	c, err := New(
		OptionWithFS(virtual),
		OptionWithLogger(quietLogger()),
		OptionWithOutput(&buf),
	)
	require.Nil(t, err)

	_, err = c.Compile(ctx, &idl.CompileRequest{
		Files:    []string{"/a.thrift"},
		DumpTree: true,
	})
	require.Nil(t, err)
	require.Contains(t, buf.String(), `"Name": "N"`)
}

func TestTargetURI(t *testing.T) {
	t.Parallel()

	c := &compiler{}
	ctx := context.Background()
	require.Equal(t, "/a/b.thrift", c.targetURI(ctx, "/a/b.thrift"))
	require.Equal(t, "/b.thrift", c.targetURI(ctx, "b.thrift"))
	require.Equal(t, "/x/y.thrift", c.targetURI(ctx, "file:///x/y.thrift"))
	require.Equal(t, "https://example.com/z", c.targetURI(ctx, "https://example.com/z"))
}
