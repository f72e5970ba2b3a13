package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor is the position of the last row of a page in (expense_date DESC, created_at DESC, id DESC) order.
type Cursor struct {
	ExpenseDate time.Time
	CreatedAt   time.Time
	ExpenseID   string
}

// EncodeToken creates an opaque, URL-safe token from an expense date, creation time and ID.
func EncodeToken(expenseDate time.Time, createdAt time.Time, expenseID string) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", expenseDate.UTC().Format(timeFormat), createdAt.UTC().Format(timeFormat), expenseID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	expenseDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (expense date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{ExpenseDate: expenseDate, CreatedAt: createdAt, ExpenseID: parts[2]}, nil
}
