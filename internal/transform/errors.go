package transform

import "errors"

// ErrNoImage reports a transform request with no image data at all.
var ErrNoImage = errors.New("no image data provided")

// StorageError reports a failure persisting or uploading image bytes.
// Op names the pipeline step that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
