package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
	"github.com/Tresor26/MOMO-Dashboard/internal/store"
)

type fakeStorage struct {
	transactions []models.StoredTransaction
	categories   []string
	summary      []store.CategorySummary
	monthly      []store.MonthlySummary
	lastFilter   store.Filter
	err          error
}

func (f *fakeStorage) ListTransactions(_ context.Context, filter store.Filter) ([]models.StoredTransaction, error) {
	f.lastFilter = filter
	return f.transactions, f.err
}

func (f *fakeStorage) Categories(context.Context) ([]string, error) {
	return f.categories, f.err
}

func (f *fakeStorage) CategorySummary(context.Context) ([]store.CategorySummary, error) {
	return f.summary, f.err
}

func (f *fakeStorage) MonthlySummary(context.Context) ([]store.MonthlySummary, error) {
	return f.monthly, f.err
}

func TestTransactionsEndpoint(t *testing.T) {
	storage := &fakeStorage{
		transactions: []models.StoredTransaction{
			{ID: 1, Category: "incoming_money", Amount: 5000, Sender: "Alice Uwase", Receiver: "You", Date: "2024-05-01 10:30:00"},
		},
	}
	server := NewServer(storage, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions?category=incoming_money&date=2024-05", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "incoming_money", storage.lastFilter.Category)
	assert.Equal(t, "2024-05", storage.lastFilter.DatePrefix)

	var got []models.StoredTransaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Uwase", got[0].Sender)
}

func TestTransactionsEmptyIsJSONArray(t *testing.T) {
	server := NewServer(&fakeStorage{}, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCategoriesEndpoint(t *testing.T) {
	storage := &fakeStorage{categories: []string{"airtime_purchases", "incoming_money"}}
	server := NewServer(storage, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"airtime_purchases", "incoming_money"}, got)
}

func TestSummaryEndpoint(t *testing.T) {
	storage := &fakeStorage{
		summary: []store.CategorySummary{
			{Category: "transfers_to_mobile", Count: 4, Total: 20000},
			{Category: "airtime_purchases", Count: 2, Total: 1500},
		},
	}
	server := NewServer(storage, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []store.CategorySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "transfers_to_mobile", got[0].Category)
	assert.Equal(t, 4, got[0].Count)
}

func TestMonthlyEndpoint(t *testing.T) {
	storage := &fakeStorage{
		monthly: []store.MonthlySummary{
			{Month: "2024-05", TransactionCount: 3, TotalAmount: 9000, OutgoingAmount: 4000, IncomingAmount: 5000},
		},
	}
	server := NewServer(storage, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/monthly-transactions", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2024-05", got[0]["month"])
	assert.InDelta(t, 4000, got[0]["outgoing_amount"], 0.001)
	assert.InDelta(t, 5000, got[0]["incoming_amount"], 0.001)
}

func TestStorageErrorReturns500(t *testing.T) {
	logger := &logging.MockLogger{}
	server := NewServer(&fakeStorage{err: errors.New("db closed")}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, logger.HasMessage("Query failed"))
}

func TestMethodNotAllowed(t *testing.T) {
	server := NewServer(&fakeStorage{}, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	server := NewServer(&fakeStorage{}, &logging.MockLogger{})

	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
