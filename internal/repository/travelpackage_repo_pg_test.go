package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewTravelPackageRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewTravelPackageRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewDestinationRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewDestinationRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewActivityRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewActivityRepository(pool)
	assert.NotNil(t, repo)
}
