// Package assets resolves the static files published next to generated pages.
package assets

import (
	"embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"sort"
)

//go:embed static
var static embed.FS

// DefaultStylesheet is the name of the bundled stylesheet.
const DefaultStylesheet = "index.css"

// Defaults returns the bundled assets rooted at their directory.
func Defaults() iofs.FS {
	sub, err := iofs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Resolver looks a file up across layered file systems. Earlier layers win,
// so a project's assets directory can override the bundled defaults.
type Resolver struct {
	layers []iofs.FS
}

func NewResolver(layers ...iofs.FS) *Resolver {
	r := &Resolver{}
	for _, l := range layers {
		if l != nil {
			r.layers = append(r.layers, l)
		}
	}
	return r
}

// ForDir layers dir over the bundled defaults. A missing dir is ignored.
func ForDir(dir string) *Resolver {
	if dir == "" {
		return NewResolver(Defaults())
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return NewResolver(Defaults())
	}
	return NewResolver(os.DirFS(dir), Defaults())
}

func (r *Resolver) Open(name string) ([]byte, error) {
	if !iofs.ValidPath(name) {
		return nil, fmt.Errorf("asset %q: %w", name, iofs.ErrInvalid)
	}
	for _, l := range r.layers {
		data, err := iofs.ReadFile(l, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("asset %q: %w", name, err)
		}
	}
	return nil, fmt.Errorf("asset %q: %w", name, iofs.ErrNotExist)
}

// Files lists every regular file visible through the resolver, sorted.
func (r *Resolver) Files() ([]string, error) {
	seen := map[string]struct{}{}
	for _, l := range r.layers {
		err := iofs.WalkDir(l, ".", func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				seen[path] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("list assets: %w", err)
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}
