package logic

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/mongodb"
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"
)

// OrderingEngine maintains a stable total order over one sibling set. Shifts
// assign every affected record an explicit order value computed from its
// current one and commit them in batches below the store's write ceiling.
// A multi-batch shift is not atomic across batches; a crash between batches
// leaves a partially shifted scope for the next write to repair.
type OrderingEngine struct {
	orderedRepo repository.OrderedRepository
	logger      *zap.Logger
}

func NewOrderingEngine(orderedRepo repository.OrderedRepository, logger *zap.Logger) *OrderingEngine {
	return &OrderingEngine{
		orderedRepo: orderedRepo,
		logger:      logger.Named("OrderingEngine"),
	}
}

// ShiftUp opens a gap at fromOrder: every sibling with order >= fromOrder is
// moved one position up. excludeID, when non-zero, is left untouched so a
// record can be moved into the gap it opened. No siblings means no store
// write at all.
func (e *OrderingEngine) ShiftUp(ctx context.Context, scope repository.OrderScope, fromOrder int, excludeID primitive.ObjectID) error {
	siblings, err := e.orderedRepo.ListSiblingsFrom(ctx, scope, fromOrder, excludeID)
	if err != nil {
		return apperrors.FromError(err)
	}
	return e.applyShift(ctx, scope, siblings, +1)
}

// ShiftDown closes the gap left behind a removed record: every sibling with
// order > afterOrder moves one position down.
func (e *OrderingEngine) ShiftDown(ctx context.Context, scope repository.OrderScope, afterOrder int) error {
	siblings, err := e.orderedRepo.ListSiblingsAbove(ctx, scope, afterOrder)
	if err != nil {
		return apperrors.FromError(err)
	}
	return e.applyShift(ctx, scope, siblings, -1)
}

func (e *OrderingEngine) applyShift(ctx context.Context, scope repository.OrderScope, siblings []repository.OrderedRecord, delta int) error {
	if len(siblings) == 0 {
		return nil
	}

	updates := make([]repository.OrderUpdate, len(siblings))
	for i, record := range siblings {
		updates[i] = repository.OrderUpdate{
			ID:    record.ID,
			Order: record.Order + delta,
		}
	}

	for start := 0; start < len(updates); start += mongodb.MaxBatchOps {
		end := start + mongodb.MaxBatchOps
		if end > len(updates) {
			end = len(updates)
		}
		if err := e.orderedRepo.ApplyOrderBatch(ctx, scope.Collection, updates[start:end]); err != nil {
			e.logger.Error("order shift batch failed",
				zap.Error(err),
				zap.String("collection", scope.Collection),
				zap.Int("committed", start),
				zap.Int("total", len(updates)))
			return apperrors.FromError(err)
		}
	}

	return nil
}
