// Package fixture seeds a fake storage client from a directory tree.
//
// Each top-level directory under the root is a bucket. Every regular file
// below it becomes a blob named by its slash-separated path relative to the
// bucket directory.
package fixture

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"golang.org/x/sync/errgroup"

	"gcsfake/pkg/fakegcs"
)

const DefaultWorkers = 4

type entry struct {
	bucket string
	name   string
	path   string
}

// Load reads the tree at root into client and returns the number of blobs
// stored. Files are read by up to workers goroutines and registered in
// lexical walk order, so repeated loads produce the same listing order.
func Load(ctx context.Context, root string, client *fakegcs.Client, workers int) (int, error) {
	fsys := os.DirFS(root)

	entries, err := walk(ctx, fsys)
	if err != nil {
		return 0, fmt.Errorf("walk fixtures: %w", err)
	}

	if workers < 1 {
		workers = DefaultWorkers
	}

	contents := make([][]byte, len(entries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, e := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, e.path)
			if err != nil {
				return fmt.Errorf("read fixture %s: %w", e.path, err)
			}
			contents[i] = data

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	for i, e := range entries {
		bucket, err := client.Bucket(e.bucket)
		if err != nil {
			return i, err
		}
		if _, err := bucket.AddFile(e.name, contents[i]); err != nil {
			return i, fmt.Errorf("store fixture %s: %w", e.path, err)
		}
	}

	logger.Info("fixtures loaded", "root", root, "blobs", len(entries))

	return len(entries), nil
}

func walk(ctx context.Context, fsys fs.FS) ([]entry, error) {
	var entries []entry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		bucket, name, ok := strings.Cut(p, "/")
		if !ok {
			logger.Info("skipping fixture outside a bucket directory", "path", p)

			return nil
		}

		entries = append(entries, entry{
			bucket: bucket,
			name:   path.Clean(name),
			path:   p,
		})

		return nil
	})

	return entries, err
}
