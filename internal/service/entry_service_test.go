package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/storage/table"
	"github.com/carson-networks/budget-planner/internal/upload"
)

func newEntryTestService(t *testing.T, reconcile bool) (*EntryService, *AccountService, *mockUploader) {
	t.Helper()
	store, op := newTestStorage(t)
	uploader := new(mockUploader)
	return NewEntryService(store, op, uploader, reconcile), NewAccountService(store, op), uploader
}

// -- CreateEntry tests --

func TestCreateEntry_WithImage(t *testing.T) {
	svc, accounts, uploader := newEntryTestService(t, false)
	account := seedAccount(t, accounts, "Banco", 1000)
	image := &upload.File{Name: "ticket.jpg", Data: []byte("jpg")}
	uploader.On("Upload", mock.Anything, image).Return("https://img.example/ticket.jpg", nil)

	id, err := svc.CreateEntry(context.Background(), table.EntryKindExpense, EntryInput{
		Amount: 250, AccountName: "Banco", Category: "Comida", Date: day("2024-03-02"), Image: image,
	})
	require.NoError(t, err)

	entry, err := svc.GetEntry(context.Background(), table.EntryKindExpense, id)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/ticket.jpg", entry.ImageURL)
	assert.Equal(t, 12, entry.Date.Hour())

	updated, err := accounts.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(750), updated.Balance)
	uploader.AssertExpectations(t)
}

func TestCreateEntry_UploadFailureWritesNothing(t *testing.T) {
	svc, accounts, uploader := newEntryTestService(t, false)
	account := seedAccount(t, accounts, "Banco", 1000)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("host down"))

	_, err := svc.CreateEntry(context.Background(), table.EntryKindIncome, EntryInput{
		Amount: 100, AccountName: "Banco", Date: day("2024-03-02"), Image: &upload.File{Name: "a.png"},
	})
	assert.Equal(t, apperror.KindUpload, apperror.KindOf(err))

	list, err := svc.ListEntries(context.Background(), table.EntryKindIncome, EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Entries)
	updated, err := accounts.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), updated.Balance)
}

func TestCreateEntry_InvalidInputSkipsUpload(t *testing.T) {
	svc, accounts, uploader := newEntryTestService(t, false)
	seedAccount(t, accounts, "Banco", 0)
	image := &upload.File{Name: "a.png"}

	_, err := svc.CreateEntry(context.Background(), table.EntryKindIncome, EntryInput{Amount: 0, AccountName: "Banco", Date: day("2024-03-02"), Image: image})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	_, err = svc.CreateEntry(context.Background(), table.EntryKindIncome, EntryInput{Amount: 5, AccountName: "Otro", Date: day("2024-03-02"), Image: image})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.CreateEntry(context.Background(), "gift", EntryInput{Amount: 5, AccountName: "Banco", Date: day("2024-03-02")})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	uploader.AssertNotCalled(t, "Upload")
}

// -- UpdateEntry tests --

func TestUpdateEntry_KeepsImageAndBalance(t *testing.T) {
	svc, accounts, uploader := newEntryTestService(t, false)
	account := seedAccount(t, accounts, "Banco", 1000)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("https://img.example/a.png", nil).Once()

	id, err := svc.CreateEntry(context.Background(), table.EntryKindIncome, EntryInput{
		Amount: 100, AccountName: "Banco", Date: day("2024-03-02"), Image: &upload.File{Name: "a.png"},
	})
	require.NoError(t, err)

	err = svc.UpdateEntry(context.Background(), table.EntryKindIncome, id, EntryInput{
		Amount: 300, Description: "sueldo", AccountName: "Banco", Date: day("2024-03-05"),
	})
	require.NoError(t, err)

	entry, err := svc.GetEntry(context.Background(), table.EntryKindIncome, id)
	require.NoError(t, err)
	assert.Equal(t, int64(300), entry.Amount)
	assert.Equal(t, "sueldo", entry.Description)
	assert.Equal(t, "https://img.example/a.png", entry.ImageURL)

	updated, err := accounts.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1100), updated.Balance)
}

func TestUpdateEntry_Reconcile(t *testing.T) {
	svc, accounts, _ := newEntryTestService(t, true)
	account := seedAccount(t, accounts, "Banco", 1000)

	id, err := svc.CreateEntry(context.Background(), table.EntryKindExpense, EntryInput{Amount: 100, AccountName: "Banco", Date: day("2024-03-02")})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateEntry(context.Background(), table.EntryKindExpense, id, EntryInput{Amount: 40, AccountName: "Banco", Date: day("2024-03-02")}))

	updated, err := accounts.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(960), updated.Balance)
}

func TestUpdateEntry_UnknownIDSkipsUpload(t *testing.T) {
	svc, accounts, uploader := newEntryTestService(t, false)
	seedAccount(t, accounts, "Banco", 1000)

	err := svc.UpdateEntry(context.Background(), table.EntryKindIncome, uuid.Must(uuid.NewV4()), EntryInput{
		Amount: 100, AccountName: "Banco", Date: day("2024-03-02"), Image: &upload.File{Name: "a.png", Data: []byte("png")},
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	uploader.AssertNotCalled(t, "Upload")
}

// -- ListEntries tests --

func TestListEntries_FiltersAndTotal(t *testing.T) {
	svc, accounts, _ := newEntryTestService(t, false)
	seedAccount(t, accounts, "Banco", 0)
	seedAccount(t, accounts, "Caja", 0)
	ctx := context.Background()

	for _, input := range []EntryInput{
		{Amount: 100, AccountName: "Banco", Category: "Sueldo", Date: day("2024-03-01")},
		{Amount: 50, AccountName: "Caja", Category: "Venta", Description: "bicicleta", Date: day("2024-03-20")},
		{Amount: 70, AccountName: "Banco", Category: "Sueldo", Date: day("2024-04-01")},
	} {
		_, err := svc.CreateEntry(ctx, table.EntryKindIncome, input)
		require.NoError(t, err)
	}

	all, err := svc.ListEntries(ctx, table.EntryKindIncome, EntryFilter{})
	require.NoError(t, err)
	assert.Len(t, all.Entries, 3)
	assert.Equal(t, int64(220), all.Total)
	assert.Equal(t, int64(70), all.Entries[0].Amount)

	march, err := svc.ListEntries(ctx, table.EntryKindIncome, EntryFilter{Month: "2024-03"})
	require.NoError(t, err)
	assert.Len(t, march.Entries, 2)
	assert.Equal(t, int64(150), march.Total)

	search, err := svc.ListEntries(ctx, table.EntryKindIncome, EntryFilter{Search: "BICI"})
	require.NoError(t, err)
	require.Len(t, search.Entries, 1)
	assert.Equal(t, "Caja", search.Entries[0].AccountName)

	byAccount, err := svc.ListEntries(ctx, table.EntryKindIncome, EntryFilter{Month: "2024-03", Search: "banco"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), byAccount.Total)
}

// -- DeleteEntry tests --

func TestDeleteEntry_RestoresBalance(t *testing.T) {
	svc, accounts, _ := newEntryTestService(t, false)
	account := seedAccount(t, accounts, "Banco", 500)

	id, err := svc.CreateEntry(context.Background(), table.EntryKindInvestment, EntryInput{Amount: 200, AccountName: "Banco", Date: day("2024-03-02")})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(context.Background(), table.EntryKindInvestment, id))

	updated, err := accounts.GetAccount(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated.Balance)
}
