package sqlite

import (
	"context"
	"errors"
	"testing"

	"employee-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SqliteEmployeeRepo {
	t.Helper()
	db, err := Open(memoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSqliteEmployeeRepo(db)
}

func jongwoo() domain.Employee {
	return domain.Employee{FirstName: "jongwoo", LastName: "lee", Email: "jongwoo@email.com"}
}

func TestInsert_AssignsID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)
	assert.Greater(t, saved.ID, int64(0))

	other, err := repo.Insert(ctx, domain.Employee{FirstName: "gildong", LastName: "hong", Email: "hong@email.com"})
	require.NoError(t, err)
	assert.NotEqual(t, saved.ID, other.ID)
}

func TestInsert_DuplicateEmailIsDuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)

	_, err = repo.Insert(ctx, jongwoo())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = repo.Insert(ctx, jongwoo())
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.Employee{FirstName: "gildong", LastName: "hong", Email: "hong@email.com"})
	require.NoError(t, err)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "jongwoo@email.com", all[0].Email)
	assert.Equal(t, "hong@email.com", all[1].Email)
}

func TestFindByIDAndEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)

	got, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	got, ok, err = repo.FindByEmail(ctx, "jongwoo@email.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved.ID, got.ID)

	_, ok, err = repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.FindByEmail(ctx, "nobody@email.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)

	got, ok, err := repo.FindByName(ctx, "jongwoo", "lee")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	_, ok, err = repo.FindByName(ctx, "jongwoo", "kim")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)

	saved.FirstName = "jw"
	saved.Email = "jw@email.com"
	updated, err := repo.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "jw", updated.FirstName)
	assert.Equal(t, "jw@email.com", updated.Email)

	got, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Update(context.Background(), domain.Employee{ID: 42, Email: "x@email.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_EmailCollisionIsDuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)
	other, err := repo.Insert(ctx, domain.Employee{FirstName: "gildong", LastName: "hong", Email: "hong@email.com"})
	require.NoError(t, err)

	other.Email = "jongwoo@email.com"
	_, err = repo.Update(ctx, other)
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey))
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, jongwoo())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	_, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// повторное удаление не ошибка
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(memoryPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
}
