package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

// byIDBatchFn adapts a GetByIDs repo method to a 1:1 nullable loader.
func byIDBatchFn[T any](get func(context.Context, []uuid.UUID) ([]T, error), id func(T) uuid.UUID) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		rows, err := get(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			row := rows[i]
			byID[id(row)] = &row
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*T]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
