package search

import (
	"context"
	"fmt"
	"reflect"
)

// Plan finds a path from src to dst in g under cfg.
//
// Preconditions and validation (in order, before any state is allocated):
//  1. cfg.Alpha within [0, 2] (ErrBadAlpha).
//  2. g non-nil (ErrNilGraph).
//  3. src and dst present in g (ErrInvalidEndpoint).
//
// src == dst returns ([src], 0) without expanding anything. An unreachable
// dst returns a Result with Found == false and a nil error. ctx is checked
// once per popped node (once per lock-step round when bidirectional) and its
// error is returned as is.
func Plan[N comparable](ctx context.Context, g Graph[N], src, dst N, cfg Config[N]) (Result[N], error) {
	if err := cfg.Validate(); err != nil {
		return Result[N]{}, err
	}
	if isNil(g) {
		return Result[N]{}, ErrNilGraph
	}
	if !g.Contains(src) {
		return Result[N]{}, fmt.Errorf("%w: source %v", ErrInvalidEndpoint, src)
	}
	if !g.Contains(dst) {
		return Result[N]{}, fmt.Errorf("%w: target %v", ErrInvalidEndpoint, dst)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if src == dst {
		return Result[N]{Path: []N{src}, Cost: 0, Found: true}, nil
	}

	e := &engine[N]{graph: g, cfg: cfg}
	if cfg.Bidirectional {
		return e.bidirectional(ctx, src, dst)
	}

	return e.unidirectional(ctx, src, dst)
}

// isNil reports whether g is nil, including typed nil pointers held in the interface.
func isNil[N comparable](g Graph[N]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// wrapInvariant tags a frontier misuse error.
func wrapInvariant(err error) error {
	return fmt.Errorf("%w: %w", ErrInvariant, err)
}

// canceled returns ctx.Err() without blocking.
func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
