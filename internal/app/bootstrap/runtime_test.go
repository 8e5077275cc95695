package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appconfig "github.com/Supremetechy/go-ham/internal/config"
	"github.com/Supremetechy/go-ham/internal/notify"
)

func TestBuildSMSSenderGatewayPostsMessage(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := BuildSMSSender(&appconfig.Config{
		SMSProvider:   "gateway",
		SMSGatewayURL: srv.URL,
		SMSFromNumber: "+15550199",
	}, nil)

	if err := sender.SendSMS(context.Background(), "+15551234567", "See you tomorrow at 10:00 AM"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if got["to"] != "+15551234567" || got["from"] != "+15550199" {
		t.Errorf("unexpected envelope: %v", got)
	}
	if got["body"] != "See you tomorrow at 10:00 AM" {
		t.Errorf("unexpected body: %q", got["body"])
	}
}

func TestBuildSMSSenderGatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream rejected", http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := BuildSMSSender(&appconfig.Config{
		SMSProvider:   "gateway",
		SMSGatewayURL: srv.URL,
		SMSFromNumber: "+15550199",
	}, nil)

	if err := sender.SendSMS(context.Background(), "+15551234567", "hello"); err == nil {
		t.Fatalf("expected error on non-2xx gateway response")
	}
}

func TestBuildSMSSenderFallsBackToStub(t *testing.T) {
	for _, cfg := range []*appconfig.Config{
		{SMSProvider: "stub"},
		{SMSProvider: "gateway"}, // no URL configured
		{},
	} {
		sender := BuildSMSSender(cfg, nil)
		if _, ok := sender.(*notify.StubSMSSender); !ok {
			t.Errorf("provider %q: expected stub sender, got %T", cfg.SMSProvider, sender)
		}
	}
}
