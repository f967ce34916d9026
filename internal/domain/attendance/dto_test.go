package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEventRequestValidate(t *testing.T) {
	req := SubmitEventRequest{StoreID: "store-1", Type: "clock_in"}
	assert.NoError(t, req.Validate())

	unknown := SubmitEventRequest{StoreID: "store-1", Type: "lunch"}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidEventType)

	empty := SubmitEventRequest{StoreID: "store-1"}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidEventType)
}

func TestApproveRequestValidate(t *testing.T) {
	approve := ApproveRequest{Decision: string(ApprovalApproved)}
	assert.NoError(t, approve.Validate())

	reject := ApproveRequest{Decision: string(ApprovalRejected)}
	assert.NoError(t, reject.Validate())

	invalid := ApproveRequest{Decision: "maybe"}
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidDecision)

	// Pending is a state, never a decision.
	pending := ApproveRequest{Decision: string(ApprovalPending)}
	assert.ErrorIs(t, pending.Validate(), ErrInvalidDecision)

	negative := -10
	badOverride := ApproveRequest{Decision: string(ApprovalApproved), OvertimeOverrideMinutes: &negative}
	err := badOverride.Validate()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDecision)
}
