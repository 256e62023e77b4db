package movewire

import (
	"errors"
	"fmt"
	"testing"
)

func TestThresholdError(t *testing.T) {
	err := &ThresholdError{Scheme: "MultiEd25519Signature", Reason: "threshold 3 exceeds 2 public keys"}
	expected := "MultiEd25519Signature: threshold invariant violated: threshold 3 exceeds 2 public keys"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	// Wrapped.
	wrapped := fmt.Errorf("decoding signature: %w", err)
	got, ok := AsThreshold(wrapped)
	if !ok {
		t.Fatal("expected AsThreshold to unwrap wrapped error")
	}
	if got.Scheme != "MultiEd25519Signature" {
		t.Errorf("unexpected scheme: %s", got.Scheme)
	}

	// Non-threshold error.
	if _, ok := AsThreshold(errors.New("plain")); ok {
		t.Fatal("expected AsThreshold to return false for unrelated error")
	}
}

func TestValidationErrors_Aggregate(t *testing.T) {
	inner := &BlockConsistencyError{BlockHeight: 10, Reason: "transaction 0 reports block height 11"}
	agg := ValidationErrors{
		inner,
		&MalformedUnionError{Union: "WriteSetChange.change", Reason: "two variants populated"},
	}

	var bce *BlockConsistencyError
	if !errors.As(agg, &bce) {
		t.Fatal("expected errors.As to reach a member of the aggregate")
	}
	if bce.BlockHeight != 10 {
		t.Errorf("expected height 10, got %d", bce.BlockHeight)
	}

	v, ok := AsValidation(fmt.Errorf("validating block: %w", agg))
	if !ok {
		t.Fatal("expected AsValidation to unwrap wrapped aggregate")
	}
	if len(v) != 2 {
		t.Errorf("expected 2 collected errors, got %d", len(v))
	}
}

func TestValidationErrors_SingleMessage(t *testing.T) {
	agg := ValidationErrors{&RecursionLimitError{Limit: 256}}
	expected := "type descriptor nesting exceeds depth limit 256"
	if agg.Error() != expected {
		t.Errorf("expected %q, got %q", expected, agg.Error())
	}
}
