package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOfUnwrapsNestedErrors(t *testing.T) {
	inner := NotFoundError("document", "abc")
	wrapped := InternalError("load document", inner)
	// the outermost AppError wins
	if got := CodeOf(wrapped); got != CodeInternal {
		t.Errorf("CodeOf = %q, want INTERNAL", got)
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Errorf("CodeOf(plain) = %q, want INTERNAL", got)
	}
	if !IsCode(inner, CodeNotFound) {
		t.Error("IsCode failed to match NOT_FOUND")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{TimeoutError("slow", nil), true},
		{ExtractionError("engine crashed", nil), true},
		{ValidationError("bad input"), false},
		{NotFoundError("document", "x"), false},
		{NewAppError(CodeAlreadyApproved, "done", nil), false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := IsRetryable(tc.err); got != tc.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestGRPCStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{ValidationError("bad"), codes.InvalidArgument},
		{NewAppError(CodeInvalidAmount, "zero", nil), codes.InvalidArgument},
		{NotFoundError("document", "x"), codes.NotFound},
		{NewAppError(CodeAlreadyProcessing, "held", nil), codes.FailedPrecondition},
		{NewAppError(CodeAlreadyApproved, "done", nil), codes.FailedPrecondition},
		{TimeoutError("slow", nil), codes.DeadlineExceeded},
		{NewAppError(CodeDenied, "no", nil), codes.PermissionDenied},
		{PathTraversalError("escape"), codes.PermissionDenied},
		{errors.New("plain"), codes.Internal},
	}
	for _, tc := range cases {
		st, ok := status.FromError(GRPCStatus(tc.err))
		if !ok {
			t.Fatalf("GRPCStatus(%v) did not produce a status error", tc.err)
		}
		if st.Code() != tc.want {
			t.Errorf("GRPCStatus(%v) = %v, want %v", tc.err, st.Code(), tc.want)
		}
	}
	if GRPCStatus(nil) != nil {
		t.Error("GRPCStatus(nil) must be nil")
	}
}
