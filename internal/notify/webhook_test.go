package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mainlycc/aw/config"
	"github.com/mainlycc/aw/internal/booking"
)

func testBookingData() BookingData {
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	subject, _ := booking.SubjectByID("math")
	level, _ := booking.LevelByID("basic")
	return BookingData{
		ReservationID: "res_test-1",
		StudentName:   "Jan Kowalski",
		ParentName:    "Anna Kowalska",
		Email:         "anna@example.com",
		Phone:         "+48 600 000 000",
		Subject:       subject,
		Level:         level,
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		Note:          "prosba o material",
		Status:        "confirmed",
	}
}

func newTestDispatcher(url string) *Dispatcher {
	d := NewDispatcher(&config.WebhookConfig{URL: url, Timeout: 2 * time.Second}, zap.NewNop())
	d.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return d
}

func TestBuildPayload(t *testing.T) {
	d := newTestDispatcher("")
	payload := d.BuildPayload(testBookingData())

	if payload.Subject != "Matematyka" || payload.SubjectIcon == "" {
		t.Errorf("subject not flattened: %+v", payload)
	}
	if payload.Level != "Podstawowy" || payload.LevelDescription != "Klasy 1-6" {
		t.Errorf("level not flattened: %+v", payload)
	}
	if payload.StartTime != "2024-06-03T14:00:00Z" || payload.EndTime != "2024-06-03T15:00:00Z" {
		t.Errorf("times not RFC3339: start=%s end=%s", payload.StartTime, payload.EndTime)
	}
	if payload.Timestamp != "2024-06-01T12:00:00Z" {
		t.Errorf("timestamp %s", payload.Timestamp)
	}
}

func TestSend_NoURLIsSilentSuccess(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	// dispatcher configured without a URL must not touch the network at all
	d := newTestDispatcher("")
	result := d.Send(context.Background(), d.BuildPayload(testBookingData()))

	if !result.Success {
		t.Errorf("no-endpoint dispatch must report success, got %+v", result)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("dispatcher performed I/O despite empty URL")
	}
}

func TestSend_PostsJSONPayload(t *testing.T) {
	var received Payload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL)
	result := d.Send(context.Background(), d.BuildPayload(testBookingData()))

	if !result.Success {
		t.Fatalf("dispatch failed: %+v", result)
	}
	if contentType != "application/json" {
		t.Errorf("content type %q", contentType)
	}
	if received.ReservationID != "res_test-1" || received.Status != "confirmed" {
		t.Errorf("payload not delivered intact: %+v", received)
	}
}

func TestSend_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL)
	result := d.Send(context.Background(), d.BuildPayload(testBookingData()))

	if result.Success {
		t.Error("502 response must be reported as failure")
	}
	if result.Error == "" {
		t.Error("failure result should carry the reason")
	}
}

func TestSend_ConnectionErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // a closed server guarantees a connection error

	d := newTestDispatcher(srv.URL)
	result := d.Send(context.Background(), d.BuildPayload(testBookingData()))

	if result.Success {
		t.Error("connection error must be reported as failure")
	}
}
