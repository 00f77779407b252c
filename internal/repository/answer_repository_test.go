package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Concurrent accepts of the same answer must serialize on this lock, or both
// would observe it as not yet accepted and award the acceptance bonus twice.
func TestAnswerRepository_FindByIDForUpdateTxLocksRow(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewAnswerRepository(db)

	_, _ = repo.FindByIDForUpdateTx(context.Background(), db, uuid.New())
	assert.Contains(t, *captured, "FOR UPDATE")
}
