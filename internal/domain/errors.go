package domain

import "fmt"

type ErrorKind string

const (
	KindValidation 	  ErrorKind = "VALIDATION"
	KindStateConflict ErrorKind = "STATE_CONFLICT"
	KindAuthorization ErrorKind = "AUTHORIZATION"
	KindDependency 	  ErrorKind = "DEPENDENCY"
	KindNotFound 	  ErrorKind = "NOT_FOUND"
)

// Error is the stable error surface of the core: a kind the caller can map to
// retry/refresh/abandon, a code identifying the exact failure, and for state
// conflicts the authoritative current state of the escrow.
type Error struct {
	Kind 		 ErrorKind
	Code 		 string
	Message 	 string
	CurrentState EscrowState
}

func (e *Error) Error() string {
	if e.CurrentState != "" {
		return fmt.Sprintf("%s: %s (current state %s)", e.Code, e.Message, e.CurrentState)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by code so errors.Is works against the sentinel templates below
// regardless of the attached state.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrDuplicateEscrow 	  = &Error{Kind: KindStateConflict, Code: "DUPLICATE_ESCROW", Message: "escrow already exists for order"}
	ErrInvalidAmount 	  = &Error{Kind: KindValidation, Code: "INVALID_AMOUNT", Message: "amount must be positive"}
	ErrInvalidTransition  = &Error{Kind: KindStateConflict, Code: "INVALID_TRANSITION", Message: "operation is not valid for current escrow state"}
	ErrAlreadyFunded 	  = &Error{Kind: KindStateConflict, Code: "ALREADY_FUNDED", Message: "escrow funded with a different gateway payment"}
	ErrEscrowNotFound 	  = &Error{Kind: KindNotFound, Code: "ESCROW_NOT_FOUND", Message: "escrow not found"}
	ErrOrderNotFound 	  = &Error{Kind: KindNotFound, Code: "ORDER_NOT_FOUND", Message: "no escrow exists for order"}
	ErrDisputeNotFound 	  = &Error{Kind: KindNotFound, Code: "DISPUTE_NOT_FOUND", Message: "dispute not found"}
	ErrReviewNotFound 	  = &Error{Kind: KindNotFound, Code: "REVIEW_NOT_FOUND", Message: "review not found"}
	ErrNotReleased 		  = &Error{Kind: KindStateConflict, Code: "NOT_RELEASED", Message: "escrow is not released yet"}
	ErrDuplicateReview 	  = &Error{Kind: KindStateConflict, Code: "DUPLICATE_REVIEW", Message: "review already exists for order"}
	ErrInvalidRating 	  = &Error{Kind: KindValidation, Code: "INVALID_RATING", Message: "rating must be an integer between 1 and 5"}
	ErrInvalidResolution  = &Error{Kind: KindValidation, Code: "INVALID_RESOLUTION", Message: "unknown dispute resolution"}
	ErrReleaseWindowOpen  = &Error{Kind: KindValidation, Code: "RELEASE_WINDOW_OPEN", Message: "buyer confirmation window has not elapsed"}
	ErrUnauthorized 	  = &Error{Kind: KindAuthorization, Code: "UNAUTHORIZED", Message: "actor is not allowed to perform this operation"}
	ErrGatewayUnavailable = &Error{Kind: KindDependency, Code: "GATEWAY_UNAVAILABLE", Message: "payment gateway timed out or is unavailable"}
)

// StateConflict clones a conflict template with the authoritative state the
// caller should re-fetch against.
func StateConflict(template *Error, current EscrowState) *Error {
	return &Error{
		Kind: 		  template.Kind,
		Code: 		  template.Code,
		Message: 	  template.Message,
		CurrentState: current,
	}
}

func DependencyFailure(message string) *Error {
	return &Error{
		Kind: 	 KindDependency,
		Code: 	 ErrGatewayUnavailable.Code,
		Message: message,
	}
}
