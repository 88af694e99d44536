package verify

import (
	"context"
	"testing"

	"github.com/zhalobnik/backend/internal/config"
)

func TestNewServiceDisabledBySwitch(t *testing.T) {
	svc, err := NewService(context.Background(), config.AIConfig{APIKey: "key"}, config.VerifyConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Enabled() {
		t.Fatal("switched-off verification must report disabled")
	}
}

func TestNewServiceDisabledWithoutCredentials(t *testing.T) {
	svc, err := NewService(context.Background(), config.AIConfig{}, config.VerifyConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Enabled() {
		t.Fatal("missing credentials must report disabled")
	}
}

func TestVerifyDisabledReturnsError(t *testing.T) {
	svc, _ := NewService(context.Background(), config.AIConfig{}, config.VerifyConfig{})

	if _, err := svc.Verify(context.Background(), "Прокуратура РФ", "ЖКХ"); err == nil {
		t.Fatal("disabled lookups must fail loudly, not return empty details")
	}
}

func TestEnabledOnNilService(t *testing.T) {
	var svc *Service
	if svc.Enabled() {
		t.Fatal("a nil service must report disabled")
	}
}
