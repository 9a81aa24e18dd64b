package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Tipos de notificação exibidos ao usuário.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Message é uma notificação transitória, sem retorno consumido pelo núcleo.
type Message struct {
	Kind        string
	Title       string
	Description string
}

// Notifier entrega notificações para o colaborador externo.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier registra notificações no log estruturado.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, msg Message) error {
	log.Info().Str("kind", msg.Kind).Str("title", msg.Title).
		Str("description", msg.Description).Msg("notification")
	return nil
}

// WebhookNotifier envia notificações para um webhook HTTP.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifier cria o notificador; URL vazia devolve nil.
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	if webhookURL == "" {
		return nil
	}
	return &WebhookNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, msg Message) error {
	if n == nil || n.webhookURL == "" {
		return errors.New("webhook notifier not configured")
	}

	payload := map[string]any{
		"text": formatMessage(msg),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errors.New("webhook notification failed")
	}
	return nil
}

func formatMessage(msg Message) string {
	emoji := ":information_source:"
	switch msg.Kind {
	case KindSuccess:
		emoji = ":white_check_mark:"
	case KindError:
		emoji = ":rotating_light:"
	}
	if msg.Title != "" {
		return emoji + " *" + msg.Title + "*\n" + msg.Description
	}
	return emoji + " " + msg.Description
}
