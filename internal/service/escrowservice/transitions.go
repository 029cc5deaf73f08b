package escrowservice

import "github.com/mkaledin/escrowd/internal/domain"

type Action string

const (
	ActionMarkPaid        Action = "mark_paid"
	ActionConfirmDeposit  Action = "confirm_deposit"
	ActionMarkDelivered   Action = "mark_delivered"
	ActionConfirmDelivery Action = "confirm_delivery"
	ActionReleaseFunds    Action = "release_funds"
)

type partyGuard int

const (
	guardNone partyGuard = iota
	guardBuyer
	guardSeller
)

// transition is one row of the table driving Apply. from lists every
// status the action may leave; stamp is the timestamp column the
// transition sets exactly once. The party guard binds the actor to the
// escrow's own buyer/seller and is lifted for admins, who act on any
// escrow their role allows.
type transition struct {
	from    []string
	to      string
	roles   []string
	stamp   string
	guard   partyGuard
	release bool
}

var transitions = map[Action]transition{
	ActionMarkPaid: {
		from:  []string{domain.PendingDepositStatus},
		to:    domain.DepositPendingStatus,
		roles: []string{domain.BuyerRole},
		stamp: "deposit_requested_at",
		guard: guardBuyer,
	},
	ActionConfirmDeposit: {
		from:  []string{domain.DepositPendingStatus},
		to:    domain.FundedStatus,
		roles: []string{domain.BuyerRole, domain.AdminRole},
		stamp: "deposit_confirmed_at",
		guard: guardBuyer,
	},
	ActionMarkDelivered: {
		from:  []string{domain.FundedStatus},
		to:    domain.DeliveredStatus,
		roles: []string{domain.SellerRole},
		stamp: "delivered_at",
		guard: guardSeller,
	},
	ActionConfirmDelivery: {
		from:  []string{domain.DeliveredStatus},
		to:    domain.ReleaseRequestedStatus,
		roles: []string{domain.BuyerRole},
		stamp: "buyer_confirmed_at",
		guard: guardBuyer,
	},
	ActionReleaseFunds: {
		from:  []string{domain.ReleaseRequestedStatus, domain.FundedStatus},
		to:    domain.CompletedStatus,
		roles: []string{domain.AdminRole},
		stamp: "released_at",
		// No balance movement here: release only flips the status and
		// stamps the audit fields. A real funds ledger is a separate
		// design.
		release: true,
	},
}

func (t transition) allowsRole(role string) bool {
	for _, r := range t.roles {
		if r == role {
			return true
		}
	}
	return false
}
