package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmreNP/sendikaapp-sub000/internal/apperrors"
	"github.com/EmreNP/sendikaapp-sub000/internal/constants"
)

func TestTransitionTableIsClosed(t *testing.T) {
	statuses := []constants.MembershipStatus{
		constants.StatusPendingDetails,
		constants.StatusPendingBranchReview,
		constants.StatusActive,
		constants.StatusRejected,
	}

	legal := map[[2]constants.MembershipStatus]bool{
		{constants.StatusPendingDetails, constants.StatusPendingBranchReview}: true,
		{constants.StatusPendingBranchReview, constants.StatusActive}:         true,
		{constants.StatusPendingBranchReview, constants.StatusRejected}:       true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got := canTransition(from, to)
			assert.Equal(t, legal[[2]constants.MembershipStatus{from, to}], got,
				"%s -> %s", from, to)
		}
	}
}

func TestCheckTransitionNamesBothStates(t *testing.T) {
	err := checkTransition(constants.StatusPendingDetails, constants.StatusActive)
	require.Error(t, err)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "pending_details")
	assert.Contains(t, appErr.Message, "active")
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	for _, terminal := range []constants.MembershipStatus{constants.StatusActive, constants.StatusRejected} {
		assert.True(t, terminal.IsTerminal())
		assert.Empty(t, transitionTable[terminal])
	}
}
