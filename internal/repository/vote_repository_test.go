package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB opens a dry-run gorm session and captures the SQL each query
// builds, so tests can assert on the statements a repository emits.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)

	var captured string
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	assert.NoError(t, err)

	return db, &captured
}

// The lock is what serializes two concurrent casts from the same voter on the
// existing row; without it both would read the same state and double-apply
// their reputation deltas.
func TestVoteRepository_FindByVoterForUpdateTxLocksRow(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewVoteRepository(db)
	questionID := uuid.New()

	_, _ = repo.FindByVoterForUpdateTx(context.Background(), db, 7, &questionID, nil)
	assert.Contains(t, *captured, "FOR UPDATE")
}
