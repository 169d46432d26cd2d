package lazymap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is the sentinel wrapped by every KeyNotFoundError.
// Callers that only care about the error class can test with
// errors.Is(err, lazymap.ErrKeyNotFound) rather than type-asserting
// KeyNotFoundError.
var ErrKeyNotFound = errors.New("lazymap: key not found")

// KeyNotFoundError is returned by At, Move, MoveOnly, and MoveAndErase
// when the requested key is not present in the logical view.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("lazymap: key not found: %v", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

func keyNotFoundErr[K any](k K) error {
	return &KeyNotFoundError{Key: k}
}
