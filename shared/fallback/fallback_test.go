package fallback_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"dost/shared/failure"
	"dost/shared/fallback"
)

func TestRead_Unconfigured(t *testing.T) {
	remoteCalled := false

	result, degraded := fallback.Read(context.Background(), false,
		func(ctx context.Context) ([]string, error) {
			remoteCalled = true

			return []string{"remote"}, nil
		},
		func() []string {
			return []string{"static"}
		},
	)

	if remoteCalled {
		t.Error("remote reader must not run without a configured backend")
	}

	if !degraded {
		t.Error("expected degraded result")
	}

	if len(result) != 1 || result[0] != "static" {
		t.Errorf("expected static data, got %v", result)
	}
}

func TestRead_RemoteSuccess(t *testing.T) {
	result, degraded := fallback.Read(context.Background(), true,
		func(ctx context.Context) (string, error) {
			return "remote", nil
		},
		func() string {
			return "static"
		},
	)

	if degraded {
		t.Error("expected non-degraded result")
	}

	if result != "remote" {
		t.Errorf("expected remote data, got %s", result)
	}
}

func TestRead_RemoteFailureDegrades(t *testing.T) {
	result, degraded := fallback.Read(context.Background(), true,
		func(ctx context.Context) (string, error) {
			return "", errors.New("connection refused")
		},
		func() string {
			return "static"
		},
	)

	if !degraded {
		t.Error("expected degraded result after remote failure")
	}

	if result != "static" {
		t.Errorf("expected static data, got %s", result)
	}
}

func TestWrite_Unconfigured(t *testing.T) {
	err := fallback.Write(context.Background(), false, func(ctx context.Context) error {
		t.Fatal("mutation must not run without a configured backend")

		return nil
	})

	if !errors.Is(err, failure.DemoModeError) {
		t.Errorf("expected DemoModeError, got %v", err)
	}

	if failure.GetCode(err) != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", failure.GetCode(err))
	}
}

func TestWrite_RemoteFailureWrapped(t *testing.T) {
	cause := failure.NotFound("room not found")

	err := fallback.Write(context.Background(), true, func(ctx context.Context) error {
		return cause
	})

	if err == nil {
		t.Fatal("expected an error")
	}

	if failure.GetCode(err) != http.StatusNotFound {
		t.Errorf("expected wrapped error to keep code 404, got %d", failure.GetCode(err))
	}
}

func TestWriteResult(t *testing.T) {
	_, err := fallback.WriteResult(context.Background(), false, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	if !errors.Is(err, failure.DemoModeError) {
		t.Errorf("expected DemoModeError, got %v", err)
	}

	result, err := fallback.WriteResult(context.Background(), true, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}
}
