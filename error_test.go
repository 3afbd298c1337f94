package pptxtract_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pptxtract"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pptxtract.Errorf(pptxtract.ELOAD, "failed to load %q", "deck.pptx")

	assert.Equal(t, pptxtract.ELOAD, pptxtract.ErrorCode(err))
	assert.Equal(t, "failed to load \"deck.pptx\"", pptxtract.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", pptxtract.Errorf(pptxtract.EINVALID, "bad xml"))

	assert.Equal(t, pptxtract.EINVALID, pptxtract.ErrorCode(err))
	assert.Equal(t, "bad xml", pptxtract.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pptxtract.EINTERNAL, pptxtract.ErrorCode(err))
	assert.Equal(t, "Internal error.", pptxtract.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pptxtract.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pptxtract.ErrorMessage(nil))
}
