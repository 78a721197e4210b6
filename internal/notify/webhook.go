package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/booking"
)

// BookingData is the input the dispatcher flattens into the wire payload.
type BookingData struct {
	ReservationID string
	StudentName   string
	ParentName    string
	Email         string
	Phone         string
	Subject       booking.Subject
	Level         booking.Level
	StartTime     time.Time
	EndTime       time.Time
	Note          string
	Status        string
}

// Payload is the outbound webhook body.
type Payload struct {
	ReservationID    string `json:"reservationId"`
	StudentName      string `json:"studentName"`
	ParentName       string `json:"parentName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Subject          string `json:"subject"`
	SubjectIcon      string `json:"subjectIcon"`
	Level            string `json:"level"`
	LevelDescription string `json:"levelDescription"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Note             string `json:"note,omitempty"`
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
}

// Result is the dispatch outcome. Callers treat failure as non-fatal: a
// booking stays locally confirmed whether or not the notification landed.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Dispatcher forwards booking details to an external automation endpoint.
// Best effort: one POST, no retry, no queue.
type Dispatcher struct {
	url    string
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewDispatcher builds a dispatcher from config. An empty URL yields a
// dispatcher that reports success without network I/O.
func NewDispatcher(cfg *config.WebhookConfig, logger *zap.Logger) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		logger: logger,
		now:    time.Now,
	}
}

// BuildPayload flattens booking data into the wire format and stamps it.
func (d *Dispatcher) BuildPayload(data BookingData) Payload {
	return Payload{
		ReservationID:    data.ReservationID,
		StudentName:      data.StudentName,
		ParentName:       data.ParentName,
		Email:            data.Email,
		Phone:            data.Phone,
		Subject:          data.Subject.Name,
		SubjectIcon:      data.Subject.Icon,
		Level:            data.Level.Name,
		LevelDescription: data.Level.Description,
		StartTime:        data.StartTime.Format(time.RFC3339),
		EndTime:          data.EndTime.Format(time.RFC3339),
		Note:             data.Note,
		Status:           data.Status,
		Timestamp:        d.now().Format(time.RFC3339),
	}
}

// Send delivers the payload. With no endpoint configured it short-circuits
// to success so environments without the integration never fail bookings.
func (d *Dispatcher) Send(ctx context.Context, payload Payload) Result {
	if d.url == "" {
		d.logger.Warn("webhook url not configured, booking data not forwarded",
			zap.String("reservation_id", payload.ReservationID))
		return Result{Success: true}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Success: false, Error: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	return Result{Success: true}
}
