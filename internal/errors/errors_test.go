package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

func TestCtlError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *CtlError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestCtlError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestPlanNotFound(t *testing.T) {
	err := PlanNotFound("office")

	if err.Code != ExitPlanNotFound {
		t.Errorf("Code = %d, want %d", err.Code, ExitPlanNotFound)
	}

	if err.Message != "plan not found: office" {
		t.Errorf("Message = %q, want %q", err.Message, "plan not found: office")
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("invalid toml")
	err := ConfigError("failed to parse config", cause)

	if err.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", err.Code, ExitConfigError)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestTerminalRequired(t *testing.T) {
	if got := TerminalRequired().Code; got != ExitTerminalRequired {
		t.Errorf("Code = %d, want %d", got, ExitTerminalRequired)
	}
}

func TestFromVLSM(t *testing.T) {
	_, parseErr := vlsm.Allocate("not-a-network", "10")
	_, hostErr := vlsm.Allocate("10.0.0.0/24", "ten")
	_, spaceErr := vlsm.Allocate("10.0.0.0/30", "5")
	_, fullErr := vlsm.Allocate("10.0.0.0/24", "100,100,100")

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid network", parseErr, ExitInvalidInput},
		{"invalid host count", hostErr, ExitInvalidInput},
		{"prefix too short", spaceErr, ExitAllocationFailed},
		{"insufficient space", fullErr, ExitAllocationFailed},
		{"foreign error", fmt.Errorf("disk on fire"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := FromVLSM(tt.err)
			if got := GetExitCode(mapped); got != tt.wantCode {
				t.Errorf("GetExitCode(FromVLSM()) = %d, want %d", got, tt.wantCode)
			}
			if !errors.Is(mapped, tt.err) {
				t.Error("mapped error should still wrap the original")
			}
		})
	}

	if FromVLSM(nil) != nil {
		t.Error("FromVLSM(nil) should be nil")
	}
}

func TestFromVLSM_KeepsSentinels(t *testing.T) {
	_, err := vlsm.Allocate("192.168.1.0/25", "200")
	mapped := FromVLSM(err)

	if !Is(mapped, vlsm.ErrPrefixTooShort) {
		t.Error("Is() should see vlsm.ErrPrefixTooShort through CtlError")
	}

	var vErr *vlsm.Error
	if !As(mapped, &vErr) {
		t.Fatal("As() should find *vlsm.Error")
	}
	if vErr.Requirement != 200 {
		t.Errorf("Requirement = %d, want 200", vErr.Requirement)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "CtlError",
			err:      PlanNotFound("test"),
			wantCode: ExitPlanNotFound,
		},
		{
			name:     "wrapped CtlError",
			err:      fmt.Errorf("outer: %w", ValidationError("bad")),
			wantCode: ExitInvalidInput,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	var ctlErr *CtlError
	if !errors.As(outer, &ctlErr) {
		t.Error("errors.As should find CtlError")
	}

	if ctlErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", ctlErr.Code, ExitConfigError)
	}
}
