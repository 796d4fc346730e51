package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofrs/uuid/v5"
)

func TestValidation_AsThroughWrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create node: %w", Validation("missing name"))
	if !IsValidation(err) {
		t.Fatalf("expected validation error through wrap")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Msg != "missing name" {
		t.Fatalf("unexpected message: %v", err)
	}
	if IsValidation(ErrNotFound) {
		t.Fatalf("sentinel is not a validation error")
	}
}

func TestPipelineError_Unwrap(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())
	err := &PipelineError{NodeID: id, Size: 250, Err: ErrNotFound}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want unwrap to ErrNotFound")
	}
	if got := err.Error(); got != "derivative "+id.String()+"@250: not found" {
		t.Fatalf("message: %q", got)
	}
	whole := &PipelineError{NodeID: id, Err: errors.New("decode")}
	if got := whole.Error(); got != "derivative "+id.String()+": decode" {
		t.Fatalf("message: %q", got)
	}
}
