package statemachine

import (
	"context"
	"fmt"

	"github.com/fitcore/fitcore-api/internal/models"
	"github.com/looplab/fsm"
)

// MembershipFSM wraps a member with its lifecycle state machine
type MembershipFSM struct {
	member *models.Member
	fsm    *fsm.FSM
}

// NewMembershipFSM creates a new membership state machine
func NewMembershipFSM(member *models.Member) *MembershipFSM {
	mfsm := &MembershipFSM{
		member: member,
	}

	mfsm.fsm = fsm.NewFSM(
		member.Status,
		fsm.Events{
			// active → frozen
			{Name: "freeze", Src: []string{models.MemberStatusActive}, Dst: models.MemberStatusFrozen},

			// frozen → active
			{Name: "unfreeze", Src: []string{models.MemberStatusFrozen}, Dst: models.MemberStatusActive},

			// active/frozen → expired (subscription window passed)
			{Name: "expire", Src: []string{models.MemberStatusActive, models.MemberStatusFrozen}, Dst: models.MemberStatusExpired},

			// a renewal reactivates from any non-cancelled state
			{Name: "renew", Src: []string{models.MemberStatusActive, models.MemberStatusFrozen, models.MemberStatusExpired}, Dst: models.MemberStatusActive},

			// any state → cancelled
			{Name: "cancel", Src: []string{models.MemberStatusActive, models.MemberStatusFrozen, models.MemberStatusExpired}, Dst: models.MemberStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return mfsm
}

// Freeze pauses an active membership
func (m *MembershipFSM) Freeze(ctx context.Context) error {
	if !m.member.MayFreeze() {
		return fmt.Errorf("membership cannot be frozen in current state: %s", m.member.Status)
	}

	if err := m.fsm.Event(ctx, "freeze"); err != nil {
		return fmt.Errorf("failed to freeze membership: %w", err)
	}

	m.member.Status = m.fsm.Current()
	return nil
}

// Unfreeze resumes a frozen membership
func (m *MembershipFSM) Unfreeze(ctx context.Context) error {
	if !m.member.MayUnfreeze() {
		return fmt.Errorf("membership cannot be resumed in current state: %s", m.member.Status)
	}

	if err := m.fsm.Event(ctx, "unfreeze"); err != nil {
		return fmt.Errorf("failed to resume membership: %w", err)
	}

	m.member.Status = m.fsm.Current()
	return nil
}

// Expire marks a lapsed membership as expired
func (m *MembershipFSM) Expire(ctx context.Context) error {
	if err := m.fsm.Event(ctx, "expire"); err != nil {
		return fmt.Errorf("failed to expire membership: %w", err)
	}

	m.member.Status = m.fsm.Current()
	return nil
}

// Renew reactivates the membership for a new subscription window
func (m *MembershipFSM) Renew(ctx context.Context) error {
	if !m.member.MayRenew() {
		return fmt.Errorf("membership cannot be renewed in current state: %s", m.member.Status)
	}

	if err := m.fsm.Event(ctx, "renew"); err != nil {
		return fmt.Errorf("failed to renew membership: %w", err)
	}

	m.member.Status = m.fsm.Current()
	return nil
}

// Cancel terminates the membership
func (m *MembershipFSM) Cancel(ctx context.Context) error {
	if !m.member.MayCancel() {
		return fmt.Errorf("membership cannot be cancelled in current state: %s", m.member.Status)
	}

	if err := m.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("failed to cancel membership: %w", err)
	}

	m.member.Status = m.fsm.Current()
	return nil
}

// Current returns the current lifecycle state
func (m *MembershipFSM) Current() string {
	return m.fsm.Current()
}
