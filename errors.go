package bayesgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bayesgo/countstore"
)

var (
	// ErrReadOnly is returned when Train is called on a classifier that was
	// opened in read-only mode.
	ErrReadOnly = errors.New("classifier is read-only")

	// ErrStorageUnavailable is returned when the underlying store cannot be
	// opened or accessed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// translateError unifies countstore errors at the API boundary.
//
// The original underlying error can be accessed via errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, countstore.ErrReadOnly) {
		return fmt.Errorf("%w: %w", ErrReadOnly, err)
	}
	if errors.Is(err, countstore.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
