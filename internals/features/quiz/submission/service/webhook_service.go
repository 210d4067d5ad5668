package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

// WebhookDispatcher entrega o documento consolidado a um endpoint
// externo. Best effort: o retorno booleano é o único contrato —
// falha nunca propaga como erro fatal.
type WebhookDispatcher interface {
	Send(ctx context.Context, row *model.ConsolidatedResponseModel) bool
}

type HTTPWebhookDispatcher struct {
	url    string
	client *http.Client
}

func NewHTTPWebhookDispatcher(url string) *HTTPWebhookDispatcher {
	return &HTTPWebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *HTTPWebhookDispatcher) Send(ctx context.Context, row *model.ConsolidatedResponseModel) bool {
	if d.url == "" {
		log.Println("[webhook] URL não configurada, envio ignorado")
		return false
	}

	payload := map[string]any{
		"submission_id":  row.RespostaSubmissionID,
		"user_id":        row.RespostaUserID,
		"user_email":     row.RespostaUserEmail,
		"full_name":      row.RespostaFullName,
		"data_submissao": row.DataSubmissao,
		"respostas":      json.RawMessage(row.Respostas),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[ERROR] [webhook] serialização: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[ERROR] [webhook] requisição: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[ERROR] [webhook] envio: %v", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[ERROR] [webhook] status inesperado: %d", resp.StatusCode)
		return false
	}
	return true
}
