package repository

import "context"

// TxManager runs a function inside a database transaction. If fn returns an
// error every write made through repositories inside fn is rolled back.
// Nested calls reuse the transaction already carried by the context.
//
// Settlement operations depend on this: a POS transaction is either fully
// written (record, item lines, linked status flips, counter updates) or not
// at all.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
