package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// Filter narrows ListTransactions results. Zero values mean "no filter".
type Filter struct {
	// Category restricts results to one category.
	Category string
	// DatePrefix matches the start of the stored date string, so "2024-01"
	// selects a month and "2024-01-15" a day.
	DatePrefix string
}

// CategorySummary is one row of the per-category aggregate.
type CategorySummary struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// MonthlySummary is one row of the per-month aggregate. Outgoing sums the
// transactions the account holder sent, incoming the ones they received.
type MonthlySummary struct {
	Month            string  `json:"month"`
	TransactionCount int     `json:"transaction_count"`
	TotalAmount      float64 `json:"total_amount"`
	OutgoingAmount   float64 `json:"outgoing_amount"`
	IncomingAmount   float64 `json:"incoming_amount"`
}

// ListTransactions returns stored transactions matching the filter, in
// insertion order.
func (s *Store) ListTransactions(ctx context.Context, filter Filter) ([]models.StoredTransaction, error) {
	query := `SELECT id, category, amount, sender, receiver, date, description, raw_body, balance, fee
		FROM sms_transactions WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.DatePrefix != "" {
		query += ` AND date LIKE ?`
		args = append(args, filter.DatePrefix+"%")
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []models.StoredTransaction
	for rows.Next() {
		var tx models.StoredTransaction
		var sender, receiver, description, rawBody sql.NullString
		var balance, fee sql.NullFloat64

		if err := rows.Scan(&tx.ID, &tx.Category, &tx.Amount, &sender, &receiver,
			&tx.Date, &description, &rawBody, &balance, &fee); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Sender = sender.String
		tx.Receiver = receiver.String
		tx.Description = description.String
		tx.RawBody = rawBody.String
		if balance.Valid {
			tx.Balance = &balance.Float64
		}
		if fee.Valid {
			tx.Fee = &fee.Float64
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// Categories returns the distinct categories present in storage.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM sms_transactions`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// CategorySummary aggregates transaction count and amount per category,
// largest total first.
func (s *Store) CategorySummary(ctx context.Context) ([]CategorySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) as count, SUM(amount) as total
		FROM sms_transactions
		GROUP BY category
		ORDER BY total DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []CategorySummary
	for rows.Next() {
		var summary CategorySummary
		if err := rows.Scan(&summary.Category, &summary.Count, &summary.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category summary: %w", err)
	}
	return summaries, nil
}

// MonthlySummary aggregates transactions per calendar month, oldest first.
func (s *Store) MonthlySummary(ctx context.Context) ([]MonthlySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			strftime('%Y-%m', date) as month,
			COUNT(*) as transaction_count,
			SUM(amount) as total_amount,
			SUM(CASE WHEN sender = 'You' THEN amount ELSE 0 END) as outgoing_amount,
			SUM(CASE WHEN receiver = 'You' THEN amount ELSE 0 END) as incoming_amount
		FROM sms_transactions
		WHERE date IS NOT NULL
		GROUP BY strftime('%Y-%m', date)
		ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []MonthlySummary
	for rows.Next() {
		var summary MonthlySummary
		if err := rows.Scan(&summary.Month, &summary.TransactionCount,
			&summary.TotalAmount, &summary.OutgoingAmount, &summary.IncomingAmount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly summary: %w", err)
	}
	return summaries, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullDecimal(value *decimal.Decimal) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: value.InexactFloat64(), Valid: true}
}
