package console

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/campus-lending/internal/domain"
	"github.com/heartmarshall/campus-lending/pkg/ctxutil"
)

// Outcome codes reported to the caller.
const (
	CodeOK             = "OK"
	CodeNotFound       = "NOT_FOUND"
	CodeDuplicateKey   = "DUPLICATE_KEY"
	CodeUnavailable    = "UNAVAILABLE"
	CodeConflict       = "CONFLICT"
	CodeInvalidState   = "INVALID_STATE"
	CodeValidation     = "VALIDATION"
	CodeBusy           = "BUSY"
	CodeStorageFailure = "STORAGE_FAILURE"
	CodeCanceled       = "CANCELED"
	CodeInternal       = "INTERNAL"
)

// Outcome is the structured result of one console command.
type Outcome struct {
	OK          bool                `json:"ok"`
	Code        string              `json:"code"`
	Reason      string              `json:"reason,omitempty"`
	Fields      []domain.FieldError `json:"fields,omitempty"`
	Retryable   bool                `json:"retryable,omitempty"`
	OperationID string              `json:"operation_id,omitempty"`
	Data        any                 `json:"data,omitempty"`
}

// Success wraps data into a successful outcome.
func Success(ctx context.Context, data any) Outcome {
	return Outcome{
		OK:          true,
		Code:        CodeOK,
		OperationID: ctxutil.OperationIDFromCtx(ctx),
		Data:        data,
	}
}

// Present maps an error returned by a service to a failure outcome. The reason
// is the full error chain, which names the entity and the rule that failed.
func Present(ctx context.Context, log *slog.Logger, err error) Outcome {
	out := Outcome{
		Code:        CodeInternal,
		Reason:      err.Error(),
		OperationID: ctxutil.OperationIDFromCtx(ctx),
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		out.Code = CodeValidation
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			out.Fields = ve.Errors
		}

	case errors.Is(err, domain.ErrNotFound):
		out.Code = CodeNotFound

	case errors.Is(err, domain.ErrAlreadyExists):
		out.Code = CodeDuplicateKey

	case errors.Is(err, domain.ErrUnavailable):
		out.Code = CodeUnavailable

	case errors.Is(err, domain.ErrConflict):
		out.Code = CodeConflict

	case errors.Is(err, domain.ErrInvalidState):
		out.Code = CodeInvalidState

	case errors.Is(err, domain.ErrBusy):
		out.Code = CodeBusy
		out.Retryable = true

	case errors.Is(err, domain.ErrStorage):
		out.Code = CodeStorageFailure
		log.ErrorContext(ctx, "storage failure",
			slog.String("error", err.Error()),
			slog.String("operation_id", out.OperationID),
		)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		out.Code = CodeCanceled

	default:
		// Unexpected error - log it, hide details from the caller
		log.ErrorContext(ctx, "unexpected console error",
			slog.String("error", err.Error()),
			slog.String("operation_id", out.OperationID),
		)
		out.Reason = "internal error"
	}

	return out
}
