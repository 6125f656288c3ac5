// Package sweep deletes compiled artifacts from a directory tree.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the suffix swept when none is configured.
const DefaultSuffix = ".class"

// Remover removes a single filesystem entry.
type Remover interface {
	Remove(path string) error
}

type osRemover struct{}

func (osRemover) Remove(path string) error { return os.Remove(path) }

// DeleteError reports a file that could not be removed.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("Error deleting %s: %v", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Options controls a single sweep.
type Options struct {
	Root        string
	Suffixes    []string
	ExcludeDirs []string
	DryRun      bool
}

// Result counts what happened during a sweep.
type Result struct {
	Deleted int
	Failed  int
	Skipped int
}

// Option customises a Sweeper.
type Option func(*Sweeper)

// WithRemover replaces the default os.Remove based remover.
func WithRemover(r Remover) Option {
	return func(s *Sweeper) {
		if r != nil {
			s.remover = r
		}
	}
}

// WithLogf sets the debug log sink.
func WithLogf(logf func(string, ...any)) Option {
	return func(s *Sweeper) {
		s.logf = logf
	}
}

// Sweeper walks a tree and removes files matching its suffixes.
type Sweeper struct {
	opts    Options
	out     io.Writer
	remover Remover
	logf    func(string, ...any)
	exclude map[string]struct{}
}

// New creates a Sweeper writing its per-file lines to out.
func New(opts Options, out io.Writer, options ...Option) *Sweeper {
	if len(opts.Suffixes) == 0 {
		opts.Suffixes = []string{DefaultSuffix}
	}
	if out == nil {
		out = os.Stdout
	}
	s := &Sweeper{
		opts:    opts,
		out:     out,
		remover: osRemover{},
		exclude: make(map[string]struct{}, len(opts.ExcludeDirs)),
	}
	for _, name := range opts.ExcludeDirs {
		s.exclude[name] = struct{}{}
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Matches reports whether name ends with any of the suffixes.
func Matches(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Run walks the root and deletes every matching file. Deletion and walk
// failures are printed or logged and never returned; the only error is a
// cancelled context.
func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var res Result
	root := s.opts.Root

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.debugf("sweep: skipping %s: %v", path, err)
			res.Skipped++
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, ok := s.exclude[d.Name()]; ok {
				s.debugf("sweep: excluded directory %s", path)
				return fs.SkipDir
			}
			return nil
		}

		if !Matches(d.Name(), s.opts.Suffixes) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 && pointsToDir(path) {
			return nil
		}

		s.remove(path, &res)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}
		s.debugf("sweep: walk of %s ended: %v", root, err)
	}
	return res, nil
}

func (s *Sweeper) remove(path string, res *Result) {
	if s.opts.DryRun {
		fmt.Fprintf(s.out, "Would delete: %s\n", path)
		res.Deleted++
		return
	}

	if err := s.remover.Remove(path); err != nil {
		delErr := &DeleteError{Path: path, Err: err}
		fmt.Fprintln(s.out, delErr.Error())
		s.debugf("sweep: %v", delErr)
		res.Failed++
		return
	}
	fmt.Fprintf(s.out, "Deleted: %s\n", path)
	res.Deleted++
}

// pointsToDir reports whether a symlink resolves to a directory.
func pointsToDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Sweeper) debugf(format string, args ...any) {
	if s.logf == nil {
		return
	}
	s.logf(format, args...)
}
