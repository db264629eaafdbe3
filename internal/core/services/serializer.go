package services

import (
	"context"
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
)

type serializerMarkKey struct{}

// Serializer runs state-changing market operations one at a time.
//
// The context handed to the running operation is marked. A call that arrives
// carrying that mark was made from inside the operation, for example by a
// ledger callback during a transfer, and is refused with
// apperrors.ErrReentrantCall instead of waiting on itself. Callbacks must
// pass on the context they were given for this to work; a call made with an
// unrelated context waits like any other caller until that context is done.
type Serializer struct {
	sem chan struct{}
}

// NewSerializer creates a Serializer. One instance must be shared by every
// service of a market.
func NewSerializer() *Serializer {
	return &Serializer{sem: make(chan struct{}, 1)}
}

// Do runs fn while holding the serializer. It gives up with the context's
// error if ctx is done before the serializer is free.
func (s *Serializer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.Running(ctx) {
		return apperrors.ErrReentrantCall
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for market serializer: %w", err)
	}
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("waiting for market serializer: %w", ctx.Err())
	}
	defer func() { <-s.sem }()
	return fn(context.WithValue(ctx, serializerMarkKey{}, s))
}

// Running reports whether ctx belongs to an operation currently holding s.
func (s *Serializer) Running(ctx context.Context) bool {
	owner, _ := ctx.Value(serializerMarkKey{}).(*Serializer)
	return owner == s
}
