package mock

import (
	"context"

	"github.com/fwojciec/pptxtract"
)

var _ pptxtract.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of pptxtract.ResultStore.
type ResultStore struct {
	SaveFn   func(ctx context.Context, result *pptxtract.ParsedPptx) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ResultStore) Save(ctx context.Context, result *pptxtract.ParsedPptx) error {
	return s.SaveFn(ctx, result)
}

func (s *ResultStore) Commit() error {
	return s.CommitFn()
}

func (s *ResultStore) Abort() error {
	return s.AbortFn()
}
