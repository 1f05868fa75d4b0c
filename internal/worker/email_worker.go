package worker

// email_worker.go
// Processes sold-notification jobs from QueueEmail: tells the seller a product
// was marked sold so they can follow up with the buyer over WhatsApp.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/demianRod/alexshop-tienda/internal/infra"

	"github.com/rs/zerolog/log"
)

type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload SoldNotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return errors.New("email_worker: invalid payload")
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty recipient — skipping")
		return nil
	}

	subject := fmt.Sprintf("AlexShop: %q marked as sold", payload.ProductName)
	body := fmt.Sprintf(
		"The product %q ($%s) was just marked as sold.\n\nProduct id: %s\n",
		payload.ProductName, payload.Price, payload.ProductID,
	)

	if err := w.mailer.Send(payload.To, subject, body); err != nil {
		return fmt.Errorf("email_worker: send failed: %w", err)
	}
	log.Info().Str("to", payload.To).Str("product", payload.ProductName).Msg("email_worker: sold notification sent")
	return nil
}
