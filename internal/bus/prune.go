package bus

import (
	"fmt"
	"log/slog"
	"sort"
)

// PruneResult reports what a prune pass did and the state it left behind.
// RemainingBytes can legitimately exceed MaxBytes when deletions failed;
// Failed makes that visible rather than silently swallowed.
type PruneResult struct {
	Pruned         int
	Failed         int
	RemainingBytes int64
	MaxBytes       int64
}

// OverBudget reports whether processed/ still exceeds the size budget
// after the pass.
func (r PruneResult) OverBudget() bool {
	return r.RemainingBytes > r.MaxBytes
}

// Prune enforces the retention budget on processed/. When the total size
// exceeds maxBytes it deletes acknowledged events oldest-first (by the
// timestamp embedded in the filename) until the total fits or the
// candidates run out. An individual deletion failure is logged and
// skipped; pruning continues and the result reports the honest final
// size. Pending events are never touched.
func (b *Bus) Prune(maxBytes int64) (PruneResult, error) {
	if maxBytes <= 0 {
		return PruneResult{}, fmt.Errorf("%w: max bytes must be positive", ErrInvalidArgument)
	}

	entries, err := b.store.ScanProcessed()
	if err != nil {
		return PruneResult{}, err
	}

	result := PruneResult{MaxBytes: maxBytes}
	for _, e := range entries {
		result.RemainingBytes += e.Size
	}
	if result.RemainingBytes <= maxBytes {
		return result, nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	for _, e := range entries {
		if result.RemainingBytes <= maxBytes {
			break
		}
		if err := b.store.RemoveProcessed(e.Name); err != nil {
			slog.Warn("failed to prune event", "file", e.Name, "error", err)
			result.Failed++
			continue
		}
		result.RemainingBytes -= e.Size
		result.Pruned++
	}
	return result, nil
}
