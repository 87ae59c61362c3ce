package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "momo_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func record(category models.Category, amount int64, sender, receiver string) models.ClassifiedRecord {
	return models.ClassifiedRecord{
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Sender:   sender,
		Receiver: receiver,
		RawBody:  "raw",
	}
}

func TestSaveAndListTransactions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	balance := decimal.NewFromInt(27000)
	fee := decimal.NewFromInt(100)
	rec := models.ClassifiedRecord{
		Category:    models.CategoryTransferToMobile,
		Amount:      decimal.NewFromInt(10000),
		Sender:      "You",
		Receiver:    "Samuel Carter",
		Description: "To Samuel Carter",
		RawBody:     "*165*S*10000 RWF transferred to Samuel Carter",
		Balance:     &balance,
		Fee:         &fee,
	}
	require.NoError(t, s.SaveTransaction(ctx, rec, "2024-05-01 10:30:00"))

	transactions, err := s.ListTransactions(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	got := transactions[0]
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "transfers_to_mobile", got.Category)
	assert.InDelta(t, 10000, got.Amount, 0.001)
	assert.Equal(t, "You", got.Sender)
	assert.Equal(t, "Samuel Carter", got.Receiver)
	assert.Equal(t, "2024-05-01 10:30:00", got.Date)
	assert.Equal(t, "To Samuel Carter", got.Description)
	require.NotNil(t, got.Balance)
	assert.InDelta(t, 27000, *got.Balance, 0.001)
	require.NotNil(t, got.Fee)
	assert.InDelta(t, 100, *got.Fee, 0.001)
}

func TestSaveTransactionNullableFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := record(models.CategoryIncomingMoney, 5000, "", "You")
	require.NoError(t, s.SaveTransaction(ctx, rec, "2024-05-01 10:30:00"))

	transactions, err := s.ListTransactions(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Empty(t, transactions[0].Sender)
	assert.Nil(t, transactions[0].Balance)
	assert.Nil(t, transactions[0].Fee)
}

func TestSaveTransactionValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveTransaction(ctx, record("made_up", 100, "You", "X"), "2024-05-01 10:30:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")

	err = s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 100, "You", "Airtime"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestListTransactionsFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryIncomingMoney, 5000, "Alice Uwase", "You"), "2024-05-01 10:30:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 1000, "You", "Airtime"), "2024-05-15 08:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 2000, "You", "Airtime"), "2024-06-02 09:00:00"))

	byCategory, err := s.ListTransactions(ctx, Filter{Category: "airtime_purchases"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byMonth, err := s.ListTransactions(ctx, Filter{DatePrefix: "2024-05"})
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)

	both, err := s.ListTransactions(ctx, Filter{Category: "airtime_purchases", DatePrefix: "2024-05"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.InDelta(t, 1000, both[0].Amount, 0.001)

	none, err := s.ListTransactions(ctx, Filter{Category: "bank_transfers"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReplaceAllClearsTable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 1000, "You", "Airtime"), "2024-05-15 08:00:00"))
	count, err := s.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.ReplaceAll(ctx))
	count, err = s.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 1000, "You", "Airtime"), "2024-05-15 08:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 2000, "You", "Airtime"), "2024-05-16 08:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryIncomingMoney, 5000, "Alice Uwase", "You"), "2024-05-17 08:00:00"))

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"airtime_purchases", "incoming_money"}, categories)
}

func TestCategorySummaryOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 1000, "You", "Airtime"), "2024-05-15 08:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 2000, "You", "Airtime"), "2024-05-16 08:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryIncomingMoney, 50000, "Alice Uwase", "You"), "2024-05-17 08:00:00"))

	summaries, err := s.CategorySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "incoming_money", summaries[0].Category)
	assert.Equal(t, 1, summaries[0].Count)
	assert.InDelta(t, 50000, summaries[0].Total, 0.001)

	assert.Equal(t, "airtime_purchases", summaries[1].Category)
	assert.Equal(t, 2, summaries[1].Count)
	assert.InDelta(t, 3000, summaries[1].Total, 0.001)
}

func TestMonthlySummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryIncomingMoney, 5000, "Alice Uwase", "You"), "2024-05-01 10:30:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryTransferToMobile, 4000, "You", "Samuel Carter"), "2024-05-20 11:00:00"))
	require.NoError(t, s.SaveTransaction(ctx, record(models.CategoryAirtimePurchase, 1000, "You", "Airtime"), "2024-06-03 09:00:00"))

	summaries, err := s.MonthlySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	may := summaries[0]
	assert.Equal(t, "2024-05", may.Month)
	assert.Equal(t, 2, may.TransactionCount)
	assert.InDelta(t, 9000, may.TotalAmount, 0.001)
	assert.InDelta(t, 4000, may.OutgoingAmount, 0.001)
	assert.InDelta(t, 5000, may.IncomingAmount, 0.001)

	june := summaries[1]
	assert.Equal(t, "2024-06", june.Month)
	assert.Equal(t, 1, june.TransactionCount)
	assert.InDelta(t, 1000, june.OutgoingAmount, 0.001)
	assert.InDelta(t, 0, june.IncomingAmount, 0.001)
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}
