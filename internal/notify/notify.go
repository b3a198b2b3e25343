package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

const (
	EventApplicationReceived = "application_received"
	EventApplicationAccepted = "application_accepted"
	EventApplicationRejected = "application_rejected"
	EventErrandMatched       = "errand_matched"
	EventErrandCompleted     = "errand_completed"
	EventErrandCancelled     = "errand_cancelled"
	EventWithdrawalRequested = "withdrawal_requested"
	EventWithdrawalProcessed = "withdrawal_processed"
)

type Event struct {
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"`
	ErrandID   string            `json:"errand_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// Publisher delivers events to the notification service. Delivery is
// best-effort: a committed state transition never depends on it.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type HTTPClient interface {
	Post(url string, headers http.Header, body []byte) (statusCode int, respBody []byte, err error)
}

type Service struct {
	address string
	client  HTTPClient
}

// New builds the notifier. An empty address disables delivery entirely.
func New(address string, client HTTPClient) *Service {
	return &Service{
		address: address,
		client:  client,
	}
}

func (s *Service) Publish(ctx context.Context, event Event) {
	if s.address == "" {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	go func() {
		body, err := json.Marshal(event)
		if err != nil {
			zap.L().Error("can't marshal notification", zap.Error(err))
			return
		}
		statusCode, _, err := s.client.Post(s.address+"/api/events", nil, body)
		if err != nil {
			zap.L().Warn("notification delivery failed",
				zap.String("type", event.Type), zap.Error(err))
			return
		}
		if statusCode >= http.StatusBadRequest {
			zap.L().Warn("notification rejected",
				zap.String("type", event.Type), zap.Int("status", statusCode))
		}
	}()
}
