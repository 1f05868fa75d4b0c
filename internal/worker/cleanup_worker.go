package worker

// cleanup_worker.go
// Processes image cleanup jobs from QueueImageCleanup: removes files whose
// product was deleted or whose image was replaced. Missing files count as
// already cleaned, not as failures.

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/demianRod/alexshop-tienda/internal/infra"

	"github.com/rs/zerolog/log"
)

type CleanupWorker struct {
	store *infra.ImageStore
}

func NewCleanupWorker(store *infra.ImageStore) *CleanupWorker {
	return &CleanupWorker{store: store}
}

func (w *CleanupWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload ImageCleanupPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return errors.New("cleanup_worker: invalid payload")
	}
	if payload.ImageURL == "" {
		log.Warn().Msg("cleanup_worker: empty image_url, skipping")
		return nil
	}

	if err := w.store.Remove(payload.ImageURL); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("url", payload.ImageURL).Msg("cleanup_worker: file already gone")
			return nil
		}
		return err
	}
	log.Info().Str("url", payload.ImageURL).Msg("cleanup_worker: orphaned image removed")
	return nil
}
