package builder

import (
	"errors"

	"github.com/vk/buildgridgo/internal/resolvecache"
	"github.com/vk/buildgridgo/internal/sourcepath"
)

// resolver applies the path model with a memo in front. Cached entries hold
// the normalized value or the failure kind only; the caller's blame context
// is re-attached on every hit so diagnostics always point at the right
// build-file location.
type resolver struct {
	sourceRoot string
	cache      *resolvecache.Cache
}

func newResolver(sourceRoot string, cacheSize int) (*resolver, error) {
	cache, err := resolvecache.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &resolver{sourceRoot: sourceRoot, cache: cache}, nil
}

func (r *resolver) resolveFile(base sourcepath.Dir, input string, blame any) (sourcepath.File, error) {
	key := resolvecache.Key{
		Base:       base.Value(),
		Input:      input,
		AsFile:     true,
		SourceRoot: r.sourceRoot,
	}
	if res, ok := r.cache.Get(key); ok {
		if res.ErrKind != nil {
			return sourcepath.File{}, &sourcepath.PathError{Err: res.ErrKind, Input: input, Blame: blame}
		}
		return sourcepath.MakeFile(res.Value), nil
	}

	f, err := base.ResolveRelativeFile(input, blame, r.sourceRoot)
	if err != nil {
		var pathErr *sourcepath.PathError
		if errors.As(err, &pathErr) {
			r.cache.Add(key, resolvecache.Result{ErrKind: pathErr.Err})
		}
		return sourcepath.File{}, err
	}
	r.cache.Add(key, resolvecache.Result{Value: f.Value()})
	return f, nil
}
