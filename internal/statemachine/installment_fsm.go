package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/looplab/fsm"
)

// InstallmentFSM wraps an installment with its state machine
type InstallmentFSM struct {
	installment *models.Installment
	fsm         *fsm.FSM
}

// NewInstallmentFSM creates a new installment state machine
func NewInstallmentFSM(installment *models.Installment) *InstallmentFSM {
	ifsm := &InstallmentFSM{
		installment: installment,
	}

	ifsm.fsm = fsm.NewFSM(
		installment.Status,
		fsm.Events{
			// pending → paid
			{Name: "pay", Src: []string{models.InstallmentStatusPending}, Dst: models.InstallmentStatusPaid},

			// paid → pending (undo)
			{Name: "undo", Src: []string{models.InstallmentStatusPaid}, Dst: models.InstallmentStatusPending},
		},
		fsm.Callbacks{},
	)

	return ifsm
}

// Pay transitions the installment to paid and stamps the payment date
func (i *InstallmentFSM) Pay(ctx context.Context, paidAt time.Time) error {
	if !i.installment.MayPay() {
		return fmt.Errorf("installment cannot be paid in current state: %s", i.installment.Status)
	}

	if err := i.fsm.Event(ctx, "pay"); err != nil {
		return fmt.Errorf("failed to pay installment: %w", err)
	}

	i.installment.Status = i.fsm.Current()
	i.installment.PaidDate = &paidAt
	return nil
}

// Undo reverts a paid installment back to pending, clearing payment data
func (i *InstallmentFSM) Undo(ctx context.Context) error {
	if !i.installment.MayUndo() {
		return fmt.Errorf("installment cannot be reverted in current state: %s", i.installment.Status)
	}

	if err := i.fsm.Event(ctx, "undo"); err != nil {
		return fmt.Errorf("failed to revert installment: %w", err)
	}

	i.installment.Status = i.fsm.Current()
	i.installment.PaidDate = nil
	i.installment.ReceiptNumber = nil
	return nil
}

// Current returns the current state
func (i *InstallmentFSM) Current() string {
	return i.fsm.Current()
}

// Can reports whether the given event can fire from the current state
func (i *InstallmentFSM) Can(event string) bool {
	return i.fsm.Can(event)
}
