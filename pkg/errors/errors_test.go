// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/tenantops/dugrow/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_load_error",
			code:    errors.ErrConfigLoad,
			message: "config file missing",
			wantStr: "[CONFIG_LOAD] config file missing",
		},
		{
			name:    "collect_failed_error",
			code:    errors.ErrCollectFailed,
			message: "root unreadable",
			wantStr: "[COLLECT_FAILED] root unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("Code = %v, want %v", err.Code, tt.code)
			}
			if err.Error() != tt.wantStr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantStr)
			}
		})
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.Wrap(cause, errors.ErrSnapshotWrite, "cannot write snapshot")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	want := "[SNAPSHOT_WRITE] cannot write snapshot: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	if errors.Wrap(nil, errors.ErrInternal, "whatever") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if errors.Wrapf(nil, errors.ErrInternal, "whatever %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrDeliveryFailed, "SMTP said no")

	if !errors.IsErrorCode(err, errors.ErrDeliveryFailed) {
		t.Error("IsErrorCode should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrDeliveryFailed) {
		t.Error("IsErrorCode should not match a plain error")
	}

	// The code must survive another layer of wrapping.
	wrapped := fmt.Errorf("context: %w", err)
	if !errors.IsErrorCode(wrapped, errors.ErrDeliveryFailed) {
		t.Error("IsErrorCode should see through wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrBackendNotFound, "no du")); got != errors.ErrBackendNotFound {
		t.Errorf("GetErrorCode = %v, want %v", got, errors.ErrBackendNotFound)
	}
	if got := errors.GetErrorCode(fmt.Errorf("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode for plain error = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCollectFailed, "boom").
		WithDetail("tenant", "acme").
		WithDetail("root", "/srv/acme")

	if err.Details["tenant"] != "acme" {
		t.Errorf("Details[tenant] = %v, want acme", err.Details["tenant"])
	}
	if err.Details["root"] != "/srv/acme" {
		t.Errorf("Details[root] = %v, want /srv/acme", err.Details["root"])
	}
}
