package statemachine

import (
	"context"
	"testing"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMembershipFSM_FreezeAndUnfreeze(t *testing.T) {
	member := &models.Member{Status: models.MemberStatusActive}
	mfsm := NewMembershipFSM(member)

	err := mfsm.Freeze(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusFrozen, member.Status)

	err = mfsm.Unfreeze(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusActive, member.Status)
}

func TestMembershipFSM_FreezeRequiresActive(t *testing.T) {
	member := &models.Member{Status: models.MemberStatusExpired}
	mfsm := NewMembershipFSM(member)

	err := mfsm.Freeze(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.MemberStatusExpired, member.Status)
}

func TestMembershipFSM_RenewReactivatesExpired(t *testing.T) {
	member := &models.Member{Status: models.MemberStatusExpired}
	mfsm := NewMembershipFSM(member)

	err := mfsm.Renew(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusActive, member.Status)
}

func TestMembershipFSM_ExpireFromFrozen(t *testing.T) {
	member := &models.Member{Status: models.MemberStatusFrozen}
	mfsm := NewMembershipFSM(member)

	err := mfsm.Expire(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusExpired, member.Status)
}

func TestMembershipFSM_CancelIsTerminal(t *testing.T) {
	member := &models.Member{Status: models.MemberStatusActive}
	mfsm := NewMembershipFSM(member)

	err := mfsm.Cancel(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.MemberStatusCancelled, member.Status)

	err = mfsm.Renew(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.MemberStatusCancelled, member.Status)
}
