package payment

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulatedSubmitSucceeds(t *testing.T) {
	provider := Simulated{Delay: 10 * time.Millisecond}
	inv := Invoice{Reference: "inv-1", Currency: "AED", Amount: 1699}

	receipt, err := provider.Submit(context.Background(), inv)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if receipt.Reference != "inv-1" {
		t.Errorf("expected reference inv-1, got %q", receipt.Reference)
	}
	if receipt.Amount != 1699 {
		t.Errorf("expected amount 1699, got %d", receipt.Amount)
	}
	if receipt.Currency != "AED" {
		t.Errorf("expected currency AED, got %q", receipt.Currency)
	}
	if receipt.PaidAt.IsZero() {
		t.Error("expected PaidAt to be set")
	}
}

func TestSimulatedSubmitGeneratesReference(t *testing.T) {
	provider := Simulated{Delay: time.Millisecond}

	receipt, err := provider.Submit(context.Background(), Invoice{Amount: 100})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if receipt.Reference == "" {
		t.Error("expected a generated reference for a blank invoice reference")
	}
}

func TestSimulatedSubmitHonorsCancellation(t *testing.T) {
	provider := Simulated{Delay: 10 * time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := provider.Submit(ctx, Invoice{Amount: 100})
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Submit did not return after cancellation")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusPending, "pending"},
		{StatusSuccess, "success"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
