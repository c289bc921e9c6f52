package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body := NewDomainErrorSimple("UPLINK_FAILED", "Remote store unavailable", http.StatusServiceUnavailable).
		WithDetails(map[string]any{"actions": []string{"retry", "simulate"}}).
		ToHTTPError()
	if body.Code != "UPLINK_FAILED" || body.Details["actions"] == nil {
		t.Fatalf("unexpected body %+v", body)
	}
}
