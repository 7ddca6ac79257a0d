package domain

import "errors"

var (
	// ErrCatalogUnavailable reports that the remote catalog could not be
	// fetched or its response could not be parsed. The store stays empty,
	// a later call may try again.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrUnknownProduct reports a cart action keyed by a model name that
	// is not present in the loaded catalog.
	ErrUnknownProduct = errors.New("unknown product model")
)
