// © 2024 Thriftlab
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"gopkg.thriftlab.org/thriftc/internal/exc"
	"gopkg.thriftlab.org/thriftc/internal/idl"
	"gopkg.thriftlab.org/thriftc/internal/iter"
	"gopkg.thriftlab.org/thriftc/internal/thrift"
)

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

func OptionWithMaxConcurrency(v int) Option {
	return func(c *compiler) error {
		c.MaxConcurrency = v
		return nil
	}
}

func OptionWithLogger(logger logrus.FieldLogger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

// OptionWithOutput redirects the --dump-ast output. Defaults to stdout.
func OptionWithOutput(w io.Writer) Option {
	return func(c *compiler) error {
		c.Output = w
		return nil
	}
}

func New(opts ...Option) (idl.Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         logrus.FieldLogger
	Output         io.Writer
}

func (c *compiler) Compile(ctx context.Context, req *idl.CompileRequest) (*idl.CompileResponse, error) {
	opened := make([]idl.File, 0, len(req.Files))
	for _, f := range req.Files {
		in, err := c.FS.Open(ctx, c.targetURI(ctx, f))
		if err != nil {
			return nil, err
		}
		opened = append(opened, in...)
	}

	files := make([]idl.File, 0, len(opened))
	it := iter.NewIteratorFilter(iter.NewSlice(opened), iter.FilterFunc[idl.File](func(ctx context.Context, f idl.File) bool {
		return f.Kind(ctx) == idl.FileKindThrift
	}))
	for f := it.Next(ctx); f.IsPresent(); f = it.Next(ctx) {
		files = append(files, f.Value())
	}
	_ = it.Close(ctx)

	loaded := &sync.Map{}
	results := make(chan fileResult)
	for _, file := range files {
		go func(file idl.File) {
			module, err := c.compileFile(ctx, file, loaded, req.DumpTree)
			results <- fileResult{module, err}
		}(file)
	}

	modules := make([]*idl.Module, 0, len(files))
	for x := 0; x < len(files); x++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				return nil, result.err
			}
			if result.module != nil {
				modules = append(modules, result.module)
			}
		}
	}

	final := &idl.Image{}
	included := make(map[string]bool)
	for _, mod := range modules {
		if included[mod.URI] {
			continue
		}
		included[mod.URI] = true
		final.Modules = append(final.Modules, mod)
	}
	if caught := c.Reporter.Reported(); len(caught) > 0 {
		return &idl.CompileResponse{Image: final}, MultiException(caught)
	}
	return &idl.CompileResponse{Image: final}, nil
}

// compileFile parses one thrift source file into an owned document. A
// syntax error is reported and the file is skipped; the error only
// surfaces in the final exception set.
func (c *compiler) compileFile(ctx context.Context, file idl.File, loaded *sync.Map, dumpTree bool) (*idl.Module, error) {
	c.Semaphore.Lock()
	defer c.Semaphore.Unlock()
	uri := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(uri, true); ok {
		return nil, nil
	}
	c.Logger.WithField("uri", uri).Debug("parsing")

	src, err := readBody(ctx, file)
	if err != nil {
		return nil, err
	}
	view, _, err := thrift.ParseDocument(src)
	if err != nil {
		return nil, c.Reporter.Report(syntaxException(uri, src, err))
	}
	document := view.ToOwned()
	c.Logger.WithField("uri", uri).
		WithField("definitions", len(document.Definitions)).
		Debug("parsed")
	if dumpTree {
		enc := json.NewEncoder(c.Output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&document); err != nil {
			return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
		}
	}
	return &idl.Module{URI: uri, Document: &document}, nil
}

func (c *compiler) targetURI(ctx context.Context, target string) string {
	// Targets may be plain paths or file URIs. Both are rooted so they
	// work against the local FileSystem implementation; other schemes
	// pass through for other backends.
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}

// readBody drains an idl.FileBody into a string.
func readBody(ctx context.Context, file idl.File) (string, error) {
	body, err := file.Body(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = body.Close(ctx)
	}()
	var b strings.Builder
	for {
		chunk, err := body.Read(ctx, 4096)
		b.Write(chunk)
		if err != nil {
			if e, ok := err.(exc.Exception); ok && e.Code() == exc.CodeEOF {
				return b.String(), nil
			}
			return "", err
		}
	}
}

// syntaxException converts a parse failure into an exception carrying the
// file URI and the 1-based line and column of the failure offset.
func syntaxException(uri string, src string, err error) exc.Exception {
	code := exc.CodeSyntaxNoMatch
	location := idl.Location{Line: 1, Column: 1}
	if syntaxErr, ok := err.(*thrift.SyntaxError); ok {
		if syntaxErr.Kind == thrift.FailureIncomplete {
			code = exc.CodeSyntaxIncomplete
		}
		location = locationAt(src, syntaxErr.Offset)
	}
	return exc.New(exc.Location{Location: location, URI: uri}, code, err.Error())
}

func locationAt(src string, offset int) idl.Location {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	column := offset - strings.LastIndexByte(before, '\n')
	return idl.Location{
		Line:   int32(line),
		Column: int32(column),
		Offset: int64(offset),
	}
}

type fileResult struct {
	module *idl.Module
	err    error
}

// MultiException carries every exception accumulated during a compile
// run.
type MultiException []exc.Exception

func (m MultiException) Error() string {
	var b strings.Builder
	for _, err := range m[:len(m)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(m[len(m)-1].Error())
	return b.String()
}
