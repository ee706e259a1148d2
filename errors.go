package tracelog

import "github.com/pkg/errors"

var (
	// ErrAlreadyInitialized is returned by Initialize when the service
	// has been initialized before. It is benign: the file opened by the
	// first call stays in use and no state changes.
	ErrAlreadyInitialized = errors.New("logger already initialised")

	// ErrEmptyStack is returned by Peek when the scope stack is empty.
	ErrEmptyStack = errors.New("scope stack is empty")
)
