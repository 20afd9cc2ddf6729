package statemachine

import (
	"context"
	"testing"
	"time"

	"github.com/Vinisilva0010/vendasOrganizadas/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInstallmentFSM_Pay(t *testing.T) {
	inst := &models.Installment{Status: models.InstallmentStatusPending}
	ifsm := NewInstallmentFSM(inst)

	paidAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	err := ifsm.Pay(context.Background(), paidAt)

	assert.NoError(t, err)
	assert.Equal(t, models.InstallmentStatusPaid, inst.Status)
	if assert.NotNil(t, inst.PaidDate) {
		assert.Equal(t, paidAt, *inst.PaidDate)
	}
}

func TestInstallmentFSM_PayAlreadyPaid(t *testing.T) {
	inst := &models.Installment{Status: models.InstallmentStatusPaid}
	ifsm := NewInstallmentFSM(inst)

	err := ifsm.Pay(context.Background(), time.Now())

	assert.Error(t, err)
	assert.Equal(t, models.InstallmentStatusPaid, inst.Status)
}

func TestInstallmentFSM_Undo(t *testing.T) {
	paidAt := time.Now()
	receipt := "REC-123"
	inst := &models.Installment{
		Status:        models.InstallmentStatusPaid,
		PaidDate:      &paidAt,
		ReceiptNumber: &receipt,
	}
	ifsm := NewInstallmentFSM(inst)

	err := ifsm.Undo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.InstallmentStatusPending, inst.Status)
	assert.Nil(t, inst.PaidDate)
	assert.Nil(t, inst.ReceiptNumber)
}

func TestInstallmentFSM_UndoPending(t *testing.T) {
	inst := &models.Installment{Status: models.InstallmentStatusPending}
	ifsm := NewInstallmentFSM(inst)

	err := ifsm.Undo(context.Background())

	assert.Error(t, err)
	assert.Equal(t, models.InstallmentStatusPending, inst.Status)
}

func TestInstallmentFSM_Can(t *testing.T) {
	pending := NewInstallmentFSM(&models.Installment{Status: models.InstallmentStatusPending})
	assert.True(t, pending.Can("pay"))
	assert.False(t, pending.Can("undo"))

	paid := NewInstallmentFSM(&models.Installment{Status: models.InstallmentStatusPaid})
	assert.True(t, paid.Can("undo"))
	assert.False(t, paid.Can("pay"))
}
