package store

import "context"

// StoreRepository reads the geocoded store directory. Store CRUD is owned by
// the operations module of the ERP.
type StoreRepository interface {
	GetByID(ctx context.Context, id string) (Store, error)
	List(ctx context.Context, includeHeadOffice bool) ([]Store, error)
}
