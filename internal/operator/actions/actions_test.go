package actions_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

type fixture struct {
	store *storage.Storage
	op    *operator.OperatorDelegator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewBoltStorage(filepath.Join(t.TempDir(), "budget.db"))
	require.NoError(t, err)

	op := operator.NewOperatorDelegator(store, 2, logging.SetupLogging("error"))
	op.Start()
	t.Cleanup(func() {
		op.Stop()
		_ = store.Close()
	})
	return &fixture{store: store, op: op}
}

func (f *fixture) run(t *testing.T, action actions.IAction) error {
	t.Helper()
	return f.op.Process(context.Background(), action)
}

func (f *fixture) account(t *testing.T, name string, balance int64) uuid.UUID {
	t.Helper()
	create := &actions.CreateAccount{Account: table.AccountWrite{Name: name, Kind: "efectivo", Balance: balance}}
	require.NoError(t, f.run(t, create))
	return create.ID
}

func (f *fixture) balance(t *testing.T, id uuid.UUID) int64 {
	t.Helper()
	account, err := f.store.Accounts.FindByID(context.Background(), id)
	require.NoError(t, err)
	return account.Balance
}

var day = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func entry(account string, amount int64) table.EntryWrite {
	return table.EntryWrite{Amount: amount, Description: "test", AccountName: account, Date: day}
}

// -- balance sign convention --

func TestCreateEntry_SignConvention(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Banco", 1000)

	require.NoError(t, f.run(t, &actions.CreateEntry{Kind: table.EntryKindIncome, Entry: entry("Banco", 500)}))
	assert.Equal(t, int64(1500), f.balance(t, id))

	require.NoError(t, f.run(t, &actions.CreateEntry{Kind: table.EntryKindExpense, Entry: entry("Banco", 200)}))
	assert.Equal(t, int64(1300), f.balance(t, id))

	require.NoError(t, f.run(t, &actions.CreateEntry{Kind: table.EntryKindInvestment, Entry: entry("Banco", 300)}))
	assert.Equal(t, int64(1000), f.balance(t, id))
}

func TestCreateEntry_UnknownAccountWritesNothing(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, &actions.CreateEntry{Kind: table.EntryKindExpense, Entry: entry("Nadie", 100)})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	rows, err := f.store.Expenses.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCreateEntry_NonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	f.account(t, "Banco", 0)

	err := f.run(t, &actions.CreateEntry{Kind: table.EntryKindIncome, Entry: entry("Banco", 0)})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
}

func TestCreateEntry_BalanceOverflowRollsBack(t *testing.T) {
	f := newFixture(t)
	rich := f.account(t, "Banco", math.MaxInt64)
	poor := f.account(t, "Deuda", math.MinInt64)

	err := f.run(t, &actions.CreateEntry{Kind: table.EntryKindIncome, Entry: entry("Banco", 1)})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, int64(math.MaxInt64), f.balance(t, rich))

	err = f.run(t, &actions.CreateEntry{Kind: table.EntryKindExpense, Entry: entry("Deuda", 1)})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, int64(math.MinInt64), f.balance(t, poor))

	rows, err := f.store.Incomes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// -- reversal --

func TestDeleteEntry_RestoresBalance(t *testing.T) {
	for _, kind := range []table.EntryKind{table.EntryKindIncome, table.EntryKindExpense, table.EntryKindInvestment} {
		t.Run(string(kind), func(t *testing.T) {
			f := newFixture(t)
			id := f.account(t, "Banco", 1000)

			create := &actions.CreateEntry{Kind: kind, Entry: entry("Banco", 250)}
			require.NoError(t, f.run(t, create))
			assert.NotEqual(t, int64(1000), f.balance(t, id))

			require.NoError(t, f.run(t, &actions.DeleteEntry{Kind: kind, ID: create.ID}))
			assert.Equal(t, int64(1000), f.balance(t, id))
		})
	}
}

func TestDeleteEntry_MissingAccountIsSkipped(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Banco", 1000)
	create := &actions.CreateEntry{Kind: table.EntryKindExpense, Entry: entry("Banco", 100)}
	require.NoError(t, f.run(t, create))
	require.NoError(t, f.run(t, &actions.DeleteAccount{ID: id}))

	require.NoError(t, f.run(t, &actions.DeleteEntry{Kind: table.EntryKindExpense, ID: create.ID}))

	_, err := f.store.Expenses.FindByID(context.Background(), create.ID)
	assert.ErrorIs(t, err, table.ErrNotFound)
}

// -- entry edit --

func TestUpdateEntry_WithoutReconcileKeepsBalance(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Banco", 1000)
	create := &actions.CreateEntry{Kind: table.EntryKindIncome, Entry: entry("Banco", 100)}
	require.NoError(t, f.run(t, create))

	require.NoError(t, f.run(t, &actions.UpdateEntry{Kind: table.EntryKindIncome, ID: create.ID, Entry: entry("Banco", 400)}))

	assert.Equal(t, int64(1100), f.balance(t, id))
	stored, err := f.store.Incomes.FindByID(context.Background(), create.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400), stored.Amount)
}

func TestUpdateEntry_ReconcileMovesEffect(t *testing.T) {
	f := newFixture(t)
	banco := f.account(t, "Banco", 1000)
	caja := f.account(t, "Caja", 50)
	create := &actions.CreateEntry{Kind: table.EntryKindExpense, Entry: entry("Banco", 100)}
	require.NoError(t, f.run(t, create))

	update := &actions.UpdateEntry{Kind: table.EntryKindExpense, ID: create.ID, Entry: entry("Caja", 30), Reconcile: true}
	require.NoError(t, f.run(t, update))

	assert.Equal(t, int64(1000), f.balance(t, banco))
	assert.Equal(t, int64(20), f.balance(t, caja))
}

func TestUpdateEntry_NotFound(t *testing.T) {
	f := newFixture(t)
	f.account(t, "Banco", 0)

	err := f.run(t, &actions.UpdateEntry{Kind: table.EntryKindIncome, ID: uuid.Must(uuid.NewV4()), Entry: entry("Banco", 10)})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

// -- transfers --

func transfer(source, destination uuid.UUID, amount int64) table.TransferWrite {
	return table.TransferWrite{Amount: amount, SourceAccountID: source, DestinationAccountID: destination, Date: day}
}

func TestCreateTransfer_MovesMoney(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "A", 1000)
	b := f.account(t, "B", 0)

	create := &actions.CreateTransfer{Transfer: transfer(a, b, 400)}
	require.NoError(t, f.run(t, create))

	assert.Equal(t, int64(600), f.balance(t, a))
	assert.Equal(t, int64(400), f.balance(t, b))

	require.NoError(t, f.run(t, &actions.DeleteTransfer{ID: create.ID}))
	assert.Equal(t, int64(1000), f.balance(t, a))
	assert.Equal(t, int64(0), f.balance(t, b))
}

func TestCreateTransfer_RejectionsWriteNothing(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "A", 100)
	b := f.account(t, "B", 0)

	err := f.run(t, &actions.CreateTransfer{Transfer: transfer(a, a, 10)})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	err = f.run(t, &actions.CreateTransfer{Transfer: transfer(a, b, 101)})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	err = f.run(t, &actions.CreateTransfer{Transfer: transfer(a, b, -5)})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	err = f.run(t, &actions.CreateTransfer{Transfer: transfer(a, uuid.Must(uuid.NewV4()), 10)})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	assert.Equal(t, int64(100), f.balance(t, a))
	assert.Equal(t, int64(0), f.balance(t, b))
	rows, err := f.store.Transfers.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateTransfer_ReversesThenApplies(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "A", 500)
	b := f.account(t, "B", 0)
	c := f.account(t, "C", 0)

	create := &actions.CreateTransfer{Transfer: transfer(a, b, 500)}
	require.NoError(t, f.run(t, create))

	// The full balance is available again once the old transfer is reversed.
	require.NoError(t, f.run(t, &actions.UpdateTransfer{ID: create.ID, Transfer: transfer(a, c, 450)}))

	assert.Equal(t, int64(50), f.balance(t, a))
	assert.Equal(t, int64(0), f.balance(t, b))
	assert.Equal(t, int64(450), f.balance(t, c))
}

func TestUpdateTransfer_InsufficientRollsBack(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "A", 500)
	b := f.account(t, "B", 0)

	create := &actions.CreateTransfer{Transfer: transfer(a, b, 300)}
	require.NoError(t, f.run(t, create))

	err := f.run(t, &actions.UpdateTransfer{ID: create.ID, Transfer: transfer(a, b, 900)})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	assert.Equal(t, int64(200), f.balance(t, a))
	assert.Equal(t, int64(300), f.balance(t, b))
	stored, err := f.store.Transfers.FindByID(context.Background(), create.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), stored.Amount)
}

func TestDeleteTransfer_DeletedDestinationIsSkipped(t *testing.T) {
	f := newFixture(t)
	a := f.account(t, "A", 500)
	b := f.account(t, "B", 0)
	create := &actions.CreateTransfer{Transfer: transfer(a, b, 100)}
	require.NoError(t, f.run(t, create))
	require.NoError(t, f.run(t, &actions.DeleteAccount{ID: b}))

	require.NoError(t, f.run(t, &actions.DeleteTransfer{ID: create.ID}))
	assert.Equal(t, int64(500), f.balance(t, a))
}

// -- accounts --

func TestCreateAccount_DuplicateName(t *testing.T) {
	f := newFixture(t)
	f.account(t, "Banco", 0)

	err := f.run(t, &actions.CreateAccount{Account: table.AccountWrite{Name: "Banco"}})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUpdateAccount_RenameCarriesEntries(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Banco", 100)
	create := &actions.CreateEntry{Kind: table.EntryKindIncome, Entry: entry("Banco", 10)}
	require.NoError(t, f.run(t, create))

	require.NoError(t, f.run(t, &actions.UpdateAccount{ID: id, Account: table.AccountWrite{Name: "Banco Nacion"}}))

	stored, err := f.store.Incomes.FindByID(context.Background(), create.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banco Nacion", stored.AccountName)
	assert.Equal(t, int64(110), f.balance(t, id))
}

func TestUpdateAccount_Balance(t *testing.T) {
	f := newFixture(t)
	id := f.account(t, "Banco", 500)

	require.NoError(t, f.run(t, &actions.UpdateAccount{ID: id, Account: table.AccountWrite{Name: "Banco", Color: "azul"}}))
	assert.Equal(t, int64(500), f.balance(t, id))

	require.NoError(t, f.run(t, &actions.UpdateAccount{ID: id, Account: table.AccountWrite{Name: "Banco"}, Balance: omit.From(int64(75))}))
	assert.Equal(t, int64(75), f.balance(t, id))
}

// -- operator --

type failingAction struct{}

func (failingAction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Accounts.Insert(ctx, &table.AccountWrite{Name: "ghost"}); err != nil {
		return err
	}
	return errors.New("boom")
}

func TestOperator_RollsBackFailedAction(t *testing.T) {
	f := newFixture(t)

	assert.EqualError(t, f.run(t, failingAction{}), "boom")

	accounts, err := f.store.Accounts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

// -- routines --

func TestToggleRoutine(t *testing.T) {
	f := newFixture(t)
	create := &actions.CreateRoutines{Routines: []table.RoutineWrite{
		{Title: "Correr", Day: "lunes", Time: "07:00", Icon: "run"},
		{Title: "Correr", Day: "jueves", Time: "07:00", Icon: "run"},
	}}
	require.NoError(t, f.run(t, create))
	require.Len(t, create.IDs, 2)

	toggle := &actions.ToggleRoutine{ID: create.IDs[0]}
	require.NoError(t, f.run(t, toggle))
	assert.True(t, toggle.Completed)

	toggle = &actions.ToggleRoutine{ID: create.IDs[0]}
	require.NoError(t, f.run(t, toggle))
	assert.False(t, toggle.Completed)
}
