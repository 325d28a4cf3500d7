// ABOUTME: Parameterized query construction for the SQLite result cache
// ABOUTME: Validates identifiers and cache keys so only placeholders carry caller data

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"content-normalizer-api/core/interfaces"
)

var (
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	// maxKeyLength leaves room for a long URL behind the key prefix
	maxKeyLength = 4096
	// maxValueLength bounds a single cached result
	maxValueLength = 16 << 20

	allowedOperators = map[string]bool{
		"=":  true,
		"!=": true,
		">":  true,
		"<":  true,
		">=": true,
		"<=": true,
	}
)

// QueryBuilder builds single-table statements with ? placeholders
type QueryBuilder struct {
	parts  []string
	where  []string
	params []interface{}
	err    error
}

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}
	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

func (qb *QueryBuilder) check(names ...string) bool {
	if qb.err != nil {
		return false
	}
	for _, n := range names {
		if err := validateName(n); err != nil {
			qb.err = err
			return false
		}
	}
	return true
}

// Select starts a SELECT of the given expressions. Expressions are either
// column names or COUNT(*).
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	if len(columns) == 0 {
		qb.parts = append(qb.parts, "SELECT *")
		return qb
	}
	for _, col := range columns {
		if col == "COUNT(*)" {
			continue
		}
		if !qb.check(col) {
			return qb
		}
	}
	qb.parts = append(qb.parts, "SELECT "+strings.Join(columns, ", "))
	return qb
}

// From adds FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if qb.check(table) {
		qb.parts = append(qb.parts, "FROM "+table)
	}
	return qb
}

// Where adds a parameterized condition; conditions are joined with AND
func (qb *QueryBuilder) Where(column, operator string, value interface{}) *QueryBuilder {
	if !qb.check(column) {
		return qb
	}
	if !allowedOperators[operator] {
		qb.err = fmt.Errorf("operator %q not allowed", operator)
		return qb
	}
	qb.where = append(qb.where, column+" "+operator+" ?")
	qb.params = append(qb.params, value)
	return qb
}

// InsertOrReplace starts an upsert into table
func (qb *QueryBuilder) InsertOrReplace(table string) *QueryBuilder {
	if qb.check(table) {
		qb.parts = append(qb.parts, "INSERT OR REPLACE INTO "+table)
	}
	return qb
}

// Values adds the column list and one placeholder per value
func (qb *QueryBuilder) Values(columns []string, values []interface{}) *QueryBuilder {
	if len(columns) != len(values) {
		qb.err = fmt.Errorf("%d columns but %d values", len(columns), len(values))
		return qb
	}
	if !qb.check(columns...) {
		return qb
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	qb.parts = append(qb.parts, "("+strings.Join(columns, ", ")+") VALUES ("+placeholders+")")
	qb.params = append(qb.params, values...)
	return qb
}

// Delete starts a DELETE from table
func (qb *QueryBuilder) Delete(table string) *QueryBuilder {
	if qb.check(table) {
		qb.parts = append(qb.parts, "DELETE FROM "+table)
	}
	return qb
}

// Build returns the statement and its parameters, or the first validation error
func (qb *QueryBuilder) Build() (string, []interface{}, error) {
	if qb.err != nil {
		return "", nil, qb.err
	}
	query := strings.Join(qb.parts, " ")
	if len(qb.where) > 0 {
		query += " WHERE " + strings.Join(qb.where, " AND ")
	}
	return query, qb.params, nil
}

// cacheQueries holds the prepared statement text for one cache table
type cacheQueries struct {
	get, set, del, cleanup, clear, count, countExpired string
}

func newCacheQueries(table string) (*cacheQueries, error) {
	q := &cacheQueries{}
	builders := []struct {
		dst *string
		qb  *QueryBuilder
	}{
		{&q.get, NewQueryBuilder().Select("value").From(table).Where("key", "=", nil).Where("expiry", ">", nil)},
		{&q.set, NewQueryBuilder().InsertOrReplace(table).Values([]string{"key", "value", "expiry"}, []interface{}{nil, nil, nil})},
		{&q.del, NewQueryBuilder().Delete(table).Where("key", "=", nil)},
		{&q.cleanup, NewQueryBuilder().Delete(table).Where("expiry", "<=", nil)},
		{&q.clear, NewQueryBuilder().Delete(table)},
		{&q.count, NewQueryBuilder().Select("COUNT(*)").From(table)},
		{&q.countExpired, NewQueryBuilder().Select("COUNT(*)").From(table).Where("expiry", "<=", nil)},
	}
	for _, b := range builders {
		query, _, err := b.qb.Build()
		if err != nil {
			return nil, err
		}
		*b.dst = query
	}
	return q, nil
}

// ValidateKey rejects keys that can't be stored and logs unusual characters
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}

	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger != nil && strings.ContainsAny(key, "'\";\\\n\r\t") {
		// Parameterization makes these safe; URLs rarely contain them
		logger.Debug("Unusual characters in cache key", map[string]interface{}{
			"key_length":  len(key),
			"key_preview": truncateKey(key),
		})
	}

	return nil
}

// truncateKey returns a safe preview of the key for logging
func truncateKey(key string) string {
	const maxPreview = 80
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue validates cache value
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}

	return nil
}
