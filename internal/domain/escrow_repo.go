package domain

import "time"

type EscrowRepository interface {
	CreateEscrow(escrow *Escrow) error
	GetEscrowByID(escrowID string) (*Escrow, error)
	GetEscrowByOrderID(orderID string) (*Escrow, error)

	// SaveTransition persists the escrow atomically, guarded by the set of
	// states the transition is valid from. A non-zero balanceDelta is applied
	// to the seller balance in the same transaction. Returns a state conflict
	// carrying the authoritative state when the guard does not match.
	SaveTransition(escrow *Escrow, fromStates []EscrowState, balanceDelta float64) error

	// FindDueForAutoRelease reads a snapshot of FUNDED escrows whose
	// confirmation window elapsed and that have no open dispute.
	FindDueForAutoRelease(now time.Time) ([]*Escrow, error)

	SellerEscrowStats(sellerID string) (*SellerEscrowStats, error)
	GetSellerBalance(sellerID string) (float64, error)
}

type DisputeRepository interface {
	CreateDispute(dispute *Dispute) error
	GetDisputeByEscrowID(escrowID string) (*Dispute, error)
	ResolveDispute(disputeID string, resolution DisputeResolution, resolvedAt time.Time) error
}
