package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/apperror"
)

func newTransferTestService(t *testing.T) (*TransferService, *AccountService) {
	t.Helper()
	store, op := newTestStorage(t)
	return NewTransferService(store, op), NewAccountService(store, op)
}

func TestCreateTransfer_Balances(t *testing.T) {
	svc, accounts := newTransferTestService(t)
	ctx := context.Background()
	a := seedAccount(t, accounts, "Banco", 1000)
	b := seedAccount(t, accounts, "Caja", 0)

	_, err := svc.CreateTransfer(ctx, TransferInput{Amount: 300, SourceAccountID: a.ID, DestinationAccountID: b.ID, Date: day("2024-03-01")})
	require.NoError(t, err)

	total, err := accounts.TotalBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)

	source, err := accounts.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(700), source.Balance)
}

func TestCreateTransfer_Insufficient(t *testing.T) {
	svc, accounts := newTransferTestService(t)
	a := seedAccount(t, accounts, "Banco", 10)
	b := seedAccount(t, accounts, "Caja", 0)

	_, err := svc.CreateTransfer(context.Background(), TransferInput{Amount: 11, SourceAccountID: a.ID, DestinationAccountID: b.ID, Date: day("2024-03-01")})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestListTransfers_ResolvesNames(t *testing.T) {
	svc, accounts := newTransferTestService(t)
	ctx := context.Background()
	a := seedAccount(t, accounts, "Banco", 1000)
	b := seedAccount(t, accounts, "Caja", 0)
	c := seedAccount(t, accounts, "Ahorro", 0)

	_, err := svc.CreateTransfer(ctx, TransferInput{Amount: 100, SourceAccountID: a.ID, DestinationAccountID: b.ID, Date: day("2024-03-01")})
	require.NoError(t, err)
	_, err = svc.CreateTransfer(ctx, TransferInput{Amount: 200, SourceAccountID: a.ID, DestinationAccountID: c.ID, Description: "fondo", Date: day("2024-04-01")})
	require.NoError(t, err)
	require.NoError(t, accounts.DeleteAccount(ctx, c.ID))

	list, err := svc.ListTransfers(ctx, TransferFilter{})
	require.NoError(t, err)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, DeletedAccountLabel, list.Transfers[0].DestinationAccountName)
	assert.Equal(t, "Caja", list.Transfers[1].DestinationAccountName)

	march, err := svc.ListTransfers(ctx, TransferFilter{Month: "2024-03"})
	require.NoError(t, err)
	assert.Equal(t, 1, march.Count)

	search, err := svc.ListTransfers(ctx, TransferFilter{Search: "eliminada"})
	require.NoError(t, err)
	require.Equal(t, 1, search.Count)
	assert.Equal(t, "fondo", search.Transfers[0].Description)
}

func TestUpdateTransfer_MovesEffect(t *testing.T) {
	svc, accounts := newTransferTestService(t)
	ctx := context.Background()
	a := seedAccount(t, accounts, "Banco", 1000)
	b := seedAccount(t, accounts, "Caja", 0)

	id, err := svc.CreateTransfer(ctx, TransferInput{Amount: 100, SourceAccountID: a.ID, DestinationAccountID: b.ID, Date: day("2024-03-01")})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateTransfer(ctx, id, TransferInput{Amount: 400, SourceAccountID: a.ID, DestinationAccountID: b.ID, Date: day("2024-03-01")}))

	transfer, err := svc.GetTransfer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(400), transfer.Amount)
	assert.Equal(t, "Banco", transfer.SourceAccountName)

	destination, err := accounts.GetAccount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400), destination.Balance)
}
