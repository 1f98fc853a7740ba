// Package webhook builds and dispatches the privacy-scoped submission
// notification. Delivery is best-effort: one attempt, no retry, and no
// failure ever reaches the submitter.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nam-conference/backend/internal/models"
)

// Payload is the summary body POSTed on each submission. It deliberately
// has no field for any other survey content: the privacy boundary is the
// struct definition itself.
type Payload struct {
	SubmissionID    string `json:"submissionId"`
	Timestamp       string `json:"timestamp"`
	SubmissionCount int    `json:"submissionCount"`
	OverallRating   *int   `json:"overallRating"`
	AdminURL        string `json:"adminUrl"`
}

// Store provides the two queries the notifier needs.
type Store interface {
	CountByStatus(ctx context.Context, status models.Status) (int, error)
	GetSubmissionTime(ctx context.Context, id uuid.UUID) (time.Time, error)
}

// Notifier constructs and dispatches submission notifications.
type Notifier struct {
	store        Store
	client       *http.Client
	webhookURL   string
	frontendBase string
	logger       *zap.Logger
}

// NewNotifier creates a webhook notifier. An empty webhookURL disables
// dispatch entirely.
func NewNotifier(store Store, webhookURL, frontendBase string, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if frontendBase == "" {
		frontendBase = "http://localhost:3000"
	}
	return &Notifier{
		store:        store,
		client:       &http.Client{Timeout: 10 * time.Second},
		webhookURL:   webhookURL,
		frontendBase: frontendBase,
		logger:       logger,
	}
}

// HandleSubmission builds the payload for a committed submission and
// dispatches it. It never returns an error: every failure in this flow is
// logged and swallowed because the submission has already succeeded.
func (n *Notifier) HandleSubmission(ctx context.Context, id uuid.UUID, overallRating *int) {
	payload, err := n.buildPayload(ctx, id, overallRating)
	if err != nil {
		n.logger.Error("build webhook payload failed",
			zap.Error(err), zap.String("submission_id", id.String()))
		return
	}
	n.dispatch(ctx, payload)
}

// buildPayload assembles the summary: ordinal submission count (inclusive
// of this submission), its timestamp, and the admin dashboard deep link.
func (n *Notifier) buildPayload(ctx context.Context, id uuid.UUID, overallRating *int) (*Payload, error) {
	count, err := n.store.CountByStatus(ctx, models.StatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	submittedAt, err := n.store.GetSubmissionTime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup submission %s: %w", id, err)
	}
	return &Payload{
		SubmissionID:    id.String(),
		Timestamp:       submittedAt.UTC().Format(time.RFC3339),
		SubmissionCount: count,
		OverallRating:   overallRating,
		AdminURL:        fmt.Sprintf("%s/admin?submission=%s", n.frontendBase, id),
	}, nil
}

func (n *Notifier) dispatch(ctx context.Context, payload *Payload) {
	if n.webhookURL == "" {
		n.logger.Warn("webhook URL not configured, skipping dispatch",
			zap.String("submission_id", payload.SubmissionID))
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("marshal webhook payload failed", zap.Error(err))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("build webhook request failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error("webhook dispatch failed",
			zap.Error(err), zap.String("submission_id", payload.SubmissionID))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Error("webhook endpoint returned non-2xx",
			zap.Int("status", resp.StatusCode),
			zap.String("submission_id", payload.SubmissionID))
		return
	}
	n.logger.Info("webhook dispatched",
		zap.String("submission_id", payload.SubmissionID),
		zap.Int("submission_count", payload.SubmissionCount))
}
