package domain

import "time"

type EscrowState string

const (
	EscrowCreated 	EscrowState = "CREATED"
	EscrowFunded 	EscrowState = "FUNDED"
	EscrowReleased 	EscrowState = "RELEASED"
	EscrowRefunded 	EscrowState = "REFUNDED"
	EscrowDisputed 	EscrowState = "DISPUTED"
	EscrowCancelled EscrowState = "CANCELLED"
)

// ReleaseConditions are fixed at escrow creation and never change afterwards.
type ReleaseConditions struct {
	AutoReleaseAfterDays 	  int
	RequiresBuyerConfirmation bool
}

type Escrow struct {
	ID 		 string
	OrderID  string
	BuyerID  string
	SellerID string
	Amount   float64
	Currency string
	State 	 EscrowState
	ReleaseConditions ReleaseConditions
	GatewayPaymentID  string

	// Each timestamp is set exactly once; together they fully determine State.
	FundedAt 			*time.Time
	DeliveryConfirmedAt *time.Time
	DisputedAt 			*time.Time
	ResolvedAt 			*time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

var escrowTransitions = map[EscrowState][]EscrowState{
	EscrowCreated:  {EscrowFunded, EscrowCancelled},
	EscrowFunded:   {EscrowReleased, EscrowRefunded, EscrowDisputed},
	EscrowDisputed: {EscrowReleased, EscrowRefunded},
}

func (e *Escrow) CanTransition(to EscrowState) bool {
	for _, next := range escrowTransitions[e.State] {
		if next == to {
			return true
		}
	}
	return false
}

func (e *Escrow) IsTerminal() bool {
	switch e.State {
	case EscrowReleased, EscrowRefunded, EscrowCancelled:
		return true
	}
	return false
}

// AutoReleaseAt returns the moment the buyer-confirmation window elapses.
// Zero time until the escrow is funded.
func (e *Escrow) AutoReleaseAt() time.Time {
	if e.FundedAt == nil {
		return time.Time{}
	}
	return e.FundedAt.Add(time.Duration(e.ReleaseConditions.AutoReleaseAfterDays) * 24 * time.Hour)
}

func (e *Escrow) AutoReleaseDue(now time.Time) bool {
	if e.State != EscrowFunded || e.FundedAt == nil {
		return false
	}
	if e.DisputedAt != nil && e.ResolvedAt == nil {
		return false
	}
	return !now.Before(e.AutoReleaseAt())
}

// DerivedState recomputes the state from the timestamp set alone. The stored
// State must always agree with it, except that a resolved timestamp cannot
// distinguish RELEASED from REFUNDED on its own.
func (e *Escrow) DerivedState() EscrowState {
	switch {
	case e.ResolvedAt != nil:
		return e.State // RELEASED or REFUNDED, payout direction is not a timestamp
	case e.DisputedAt != nil:
		return EscrowDisputed
	case e.FundedAt != nil:
		return EscrowFunded
	case e.State == EscrowCancelled:
		return EscrowCancelled
	default:
		return EscrowCreated
	}
}

type DisputeResolution string

const (
	ResolutionReleaseToSeller DisputeResolution = "RELEASE_TO_SELLER"
	ResolutionRefundToBuyer   DisputeResolution = "REFUND_TO_BUYER"
)

type Dispute struct {
	ID 		   string
	EscrowID   string
	OpenedBy   string
	Reason 	   string
	Resolution DisputeResolution
	OpenedAt   time.Time
	ResolvedAt *time.Time
}

// SellerEscrowStats feed the completion and dispute signals of the trust score.
// Escrows that never reached FUNDED carry no funds and are excluded.
type SellerEscrowStats struct {
	FundedOrLater int64
	Released 	  int64
	Disputed 	  int64
}
