package service

import (
	"testing"

	"github.com/lifetrackhq/lifetrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityUpsertPerDay(t *testing.T) {
	s := NewIntegrityService(repository.NewIntegrityLogRepository(newTestDB(t)))
	day := date(2025, 3, 12)

	first, err := s.Upsert(day, 7, "slow morning")
	require.NoError(t, err)

	second, err := s.Upsert(day, 9, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "one row per day")
	assert.Equal(t, 9, second.Score)
	assert.Equal(t, "slow morning", second.Note, "empty note preserves the prior one")

	_, err = s.Upsert(day, 11, "")
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
}
