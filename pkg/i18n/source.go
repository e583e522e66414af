package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds parallel Source.Read calls during loading.
const maxConcurrentReads = 8

// Source lists and reads translation files from any backing store.
// Names use forward slashes and follow the WithYAMLDir layout.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) ([]byte, error)
}

// WithSource loads every YAML, JSON and TOML file listed by src. Files are
// read concurrently and merged in name order, so the result does not depend
// on read timing.
func WithSource(ctx context.Context, src Source) Option {
	return func(s *Store) error {
		if src == nil {
			return ErrNilSource
		}

		names, err := src.List(ctx)
		if err != nil {
			return fmt.Errorf("listing translation files: %w", err)
		}
		names = slices.DeleteFunc(slices.Clone(names), func(name string) bool {
			_, ok := decoders[strings.ToLower(path.Ext(name))]
			return !ok
		})
		slices.Sort(names)

		contents := make([][]byte, len(names))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrentReads)
		for i, name := range names {
			g.Go(func() error {
				data, err := src.Read(gctx, name)
				if err != nil {
					return fmt.Errorf("reading %q: %w", name, err)
				}
				contents[i] = data
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, name := range names {
			if err := s.addFile(name, contents[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

type fsSource struct {
	fsys fs.FS
}

// FSSource adapts an fs.FS to the Source interface.
func FSSource(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

func (f fsSource) List(ctx context.Context) ([]string, error) {
	var names []string
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	return names, err
}

func (f fsSource) Read(_ context.Context, name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, name)
}
