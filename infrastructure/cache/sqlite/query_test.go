package sqlite

import (
	"strings"
	"testing"
)

func TestQueryBuilder_Select(t *testing.T) {
	query, params, err := NewQueryBuilder().
		Select("value").
		From("cache").
		Where("key", "=", "k").
		Where("expiry", ">", int64(10)).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "SELECT value FROM cache WHERE key = ? AND expiry > ?"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(params) != 2 || params[0] != "k" {
		t.Errorf("params = %v, want [k 10]", params)
	}
}

func TestQueryBuilder_InsertOrReplace(t *testing.T) {
	query, params, err := NewQueryBuilder().
		InsertOrReplace("cache").
		Values([]string{"key", "value", "expiry"}, []interface{}{"k", []byte("v"), int64(1)}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(params) != 3 {
		t.Errorf("len(params) = %d, want 3", len(params))
	}
}

func TestQueryBuilder_Rejects(t *testing.T) {
	tests := []struct {
		name string
		qb   *QueryBuilder
	}{
		{"table with injection", NewQueryBuilder().Delete("cache; DROP TABLE cache")},
		{"column with quote", NewQueryBuilder().Select("value'").From("cache")},
		{"operator not allowed", NewQueryBuilder().Delete("cache").Where("key", "LIKE", "%")},
		{"empty table", NewQueryBuilder().From("")},
		{"mismatched values", NewQueryBuilder().InsertOrReplace("cache").Values([]string{"key"}, nil)},
		{"name too long", NewQueryBuilder().From(strings.Repeat("a", 65))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.qb.Build(); err == nil {
				t.Error("Build() expected an error")
			}
		})
	}
}

func TestNewCacheQueries(t *testing.T) {
	q, err := newCacheQueries("cache")
	if err != nil {
		t.Fatalf("newCacheQueries() error = %v", err)
	}

	checks := map[string]string{
		q.get:          "SELECT value FROM cache WHERE key = ? AND expiry > ?",
		q.set:          "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)",
		q.del:          "DELETE FROM cache WHERE key = ?",
		q.cleanup:      "DELETE FROM cache WHERE expiry <= ?",
		q.clear:        "DELETE FROM cache",
		q.count:        "SELECT COUNT(*) FROM cache",
		q.countExpired: "SELECT COUNT(*) FROM cache WHERE expiry <= ?",
	}
	for got, want := range checks {
		if got != want {
			t.Errorf("query = %q, want %q", got, want)
		}
	}

	if _, err := newCacheQueries("bad table"); err == nil {
		t.Error("newCacheQueries() should reject an invalid table name")
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"url key", "normalize:https://example.com/feed.xml?page=2", false},
		{"empty", "", true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("k", maxKeyLength+1), true},
		{"quotes allowed", "it's fine", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidateValue([]byte("ok")); err != nil {
		t.Errorf("ValidateValue() error = %v", err)
	}
	if err := ValidateValue(nil); err == nil {
		t.Error("ValidateValue(nil) expected an error")
	}
	if err := ValidateValue(make([]byte, maxValueLength+1)); err == nil {
		t.Error("ValidateValue() expected an error for oversized value")
	}
}
