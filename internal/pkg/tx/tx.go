// Package tx carries the transactional repository through the request context
// so handlers can wrap their work in a single database transaction.
package tx

import (
	"context"
	"net/http"
)

type key string

const KeyTx = key("tx")

type TxRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo TxRepo
}

// TxMiddlewareHTTP injects the repository into the request context.
func TxMiddlewareHTTP(repo TxRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a transaction when a repository is present in the
// context, and directly otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return cb(ctx)
	}

	return t.DbRepo.WithTx(ctx, cb)
}
