package memory

import (
	"context"
	"sync"

	"github.com/premoball/premo-api/internal/domain/prediction"
)

type PredictionRepository struct {
	mu      sync.RWMutex
	outputs map[int64]prediction.ModelOutput
}

func NewPredictionRepository(outputs []prediction.ModelOutput) *PredictionRepository {
	byMatch := make(map[int64]prediction.ModelOutput, len(outputs))
	for _, item := range outputs {
		byMatch[item.MatchID] = item
	}
	return &PredictionRepository{outputs: byMatch}
}

func (r *PredictionRepository) GetByMatch(_ context.Context, matchID int64) (prediction.ModelOutput, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.outputs[matchID]
	return item, ok, nil
}
