package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/premoball/premo-api/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["success"].(bool); !got {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if body["message"] != nil {
		t.Fatalf("expected null message, got %v", body["message"])
	}
	if _, ok := body["content"]; !ok {
		t.Fatalf("expected content key in success response")
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: match=42", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["success"].(bool); got {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Fatalf("expected error message, got %v", body["message"])
	}
}

func TestWriteError_MasksInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused at 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if msg, _ := body["message"].(string); msg != internalErrorMessage {
		t.Fatalf("expected masked message, got %q", msg)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrNotFound, want: http.StatusNotFound},
		{name: "dependency unavailable", err: usecase.ErrDependencyUnavailable, want: http.StatusServiceUnavailable},
		{name: "inconsistent data", err: usecase.ErrInconsistentData, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapError(fmt.Errorf("wrapped: %w", tt.err)); got != tt.want {
				t.Fatalf("mapError=%d want=%d", got, tt.want)
			}
		})
	}
}
