package preset

import "fmt"

// FolderError is returned when a chord directory can't be created.
type FolderError struct {
	Path string
	Err  error
}

func (e *FolderError) Error() string {
	return fmt.Sprintf("cannot create folder %q: %v", e.Path, e.Err)
}

func (e *FolderError) Unwrap() error {
	return e.Err
}

// WriteError is returned when a preset file can't be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write preset %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// SerializeError is returned when the serializer rejects an instrument.
type SerializeError struct {
	Name string
	Err  error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("cannot serialize instrument %q: %v", e.Name, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}
