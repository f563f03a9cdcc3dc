package repository

import (
	"strings"
	"testing"

	"github.com/linskybing/staffing-go/internal/domain/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB renders postgres SQL without opening a connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=staffing dbname=staffing sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func searchSQL(t *testing.T, params FormQueryParams) string {
	t.Helper()
	return dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		var forms []form.Form
		return tx.Model(&form.Form{}).Scopes(searchScope(params)).Find(&forms)
	})
}

func TestSearchScopeOrdersByRankThenRecency(t *testing.T) {
	sql := searchSQL(t, FormQueryParams{Query: "forklift", Limit: 10})

	orderAt := strings.Index(sql, "ORDER BY")
	require.NotEqual(t, -1, orderAt, sql)
	order := sql[orderAt:]

	assert.True(t, strings.HasPrefix(order, "ORDER BY ts_rank("), order)
	assert.Contains(t, order, "'A'")
	assert.Contains(t, order, "'B'")
	assert.Contains(t, order, "'C'")
	assert.Contains(t, order, "DESC, created_at DESC")
	assert.Less(t, strings.Index(order, "ts_rank("), strings.Index(order, "created_at DESC"))
	assert.Contains(t, sql, "plainto_tsquery('simple', 'forklift')")
	assert.Contains(t, sql, "LIMIT 10")
}

func TestSearchScopeWithoutQueryOrdersByRecency(t *testing.T) {
	common := true
	qt := form.QuestionDatepicker
	sql := searchSQL(t, FormQueryParams{Common: &common, QuestionType: &qt})

	assert.NotContains(t, sql, "ts_rank")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, sql, "common = true")
	assert.Contains(t, sql, "datepicker")
}
