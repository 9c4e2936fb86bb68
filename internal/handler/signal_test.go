package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"strikeboard/internal/domain"
)

const validSignalBody = `{
	"asset": "BTC",
	"budget_usd": 1000,
	"trade_window_ms": 3600000,
	"risk_level": "moderate",
	"strategy_focus": "growth"
}`

func TestGenerateSignalsSuccess(t *testing.T) {
	stub := &stubProviders{agents: completedAgents()}
	router := newTestRouter(newTestHandler(stub))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signals/generate", strings.NewReader(validSignalBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.SignalResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(result.Signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(result.Signals))
	}
	if result.Signals[0].Instrument != "BTC-29AUG25-50000-C" {
		t.Fatalf("unexpected instrument: %s", result.Signals[0].Instrument)
	}
}

func TestGenerateSignalsMalformedBody(t *testing.T) {
	router := newTestRouter(newTestHandler(&stubProviders{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signals/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateSignalsInvalidBudget(t *testing.T) {
	router := newTestRouter(newTestHandler(&stubProviders{}))

	body := `{"asset":"BTC","budget_usd":0,"trade_window_ms":3600000,"risk_level":"moderate","strategy_focus":"growth"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signals/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGenerateSignalsTimeoutMapsToGatewayTimeout(t *testing.T) {
	pending := completedAgents()
	pending[0].SignalRequests[0].Progress = "pending"
	pending[0].SignalRequests[0].Signals = nil
	stub := &stubProviders{agents: pending}
	router := newTestRouter(newTestHandler(stub))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signals/generate", strings.NewReader(validSignalBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
}
