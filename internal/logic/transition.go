package logic

import (
	"fmt"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
)

// transitionTable is the closed set of legal status transitions. Anything not
// listed here fails; terminal states have no entry at all.
var transitionTable = map[constants.MembershipStatus][]constants.MembershipStatus{
	constants.StatusPendingDetails:      {constants.StatusPendingBranchReview},
	constants.StatusPendingBranchReview: {constants.StatusActive, constants.StatusRejected},
}

func canTransition(from, to constants.MembershipStatus) bool {
	for _, next := range transitionTable[from] {
		if next == to {
			return true
		}
	}
	return false
}

// checkTransition rejects illegal transitions with an error that names both
// states. Terminal states never transition; there is no silent no-op.
func checkTransition(from, to constants.MembershipStatus) error {
	if canTransition(from, to) {
		return nil
	}
	return apperrors.Validation("ILLEGAL_TRANSITION",
		fmt.Sprintf("cannot transition from %s to %s", from, to)).
		WithCause(ErrIllegalTransition)
}
