package nd

import (
	"errors"
	"testing"
)

func TestThisID_FailsOnHost(t *testing.T) {
	id, err := ThisID[R2]()
	if !errors.Is(err, ErrFeatureNotSupported) {
		t.Fatalf("expected ErrFeatureNotSupported, got %v", err)
	}
	if id != (ID[R2]{}) {
		t.Errorf("expected zero id alongside the error, got %v", id)
	}

	if _, err := ThisID[R1](); err == nil {
		t.Error("rank 1 accessor returned no error")
	}
	if _, err := ThisID[R3](); err == nil {
		t.Error("rank 3 accessor returned no error")
	}
}

func TestCurrentID_FailsOnHost(t *testing.T) {
	id, err := CurrentID[R3]()
	if !errors.Is(err, ErrFeatureNotSupported) {
		t.Fatalf("expected ErrFeatureNotSupported, got %v", err)
	}
	if id != (ID[R3]{}) {
		t.Errorf("expected zero id alongside the error, got %v", id)
	}

	_, legacy := ThisID[R3]()
	if legacy.Error() != err.Error() {
		t.Errorf("ThisID and CurrentID disagree: %q vs %q", legacy, err)
	}
}
