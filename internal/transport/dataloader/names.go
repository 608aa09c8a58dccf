package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ProfileNames resolves display names for ids in one batch. Unknown or nil
// ids are absent from the result.
func ProfileNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	keys := distinct(ids)
	if len(keys) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	profiles, errs := FromContext(ctx).ProfileByID.LoadMany(ctx, keys)()
	out := make(map[uuid.UUID]string, len(keys))
	for i, p := range profiles {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("load profile %s: %w", keys[i], errs[i])
		}
		if p != nil {
			out[keys[i]] = p.DisplayName()
		}
	}
	return out, nil
}

// StageNames resolves stage names for ids in one batch.
func StageNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	keys := distinct(ids)
	if len(keys) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	stages, errs := FromContext(ctx).StageByID.LoadMany(ctx, keys)()
	out := make(map[uuid.UUID]string, len(keys))
	for i, s := range stages {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("load stage %s: %w", keys[i], errs[i])
		}
		if s != nil {
			out[keys[i]] = s.Name
		}
	}
	return out, nil
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
