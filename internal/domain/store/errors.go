package store

import "errors"

var (
	ErrStoreNotFound = errors.New("store not found")
)
