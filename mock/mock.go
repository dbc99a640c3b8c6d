// Package mock provides test doubles for diffpager interfaces.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/diffpager"
)

// Compile-time interface verification.
var (
	_ diffpager.Parser   = (*Parser)(nil)
	_ diffpager.Viewer   = (*Viewer)(nil)
	_ diffpager.Resolver = (*Resolver)(nil)
)

// Parser is a mock implementation of diffpager.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*diffpager.Document, error)
}

func (p *Parser) Parse(r io.Reader) (*diffpager.Document, error) {
	return p.ParseFn(r)
}

// Viewer is a mock implementation of diffpager.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, doc *diffpager.Document) error
}

func (v *Viewer) View(ctx context.Context, doc *diffpager.Document) error {
	return v.ViewFn(ctx, doc)
}

// Resolver is a mock implementation of diffpager.Resolver.
type Resolver struct {
	ResolveFn func(line int) diffpager.Context
}

func (r *Resolver) Resolve(line int) diffpager.Context {
	return r.ResolveFn(line)
}
