package service

import (
	"testing"

	"gamerate/internal/cache"
	"gamerate/internal/httpapi/apperrors"
	"gamerate/internal/httpapi/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.platforms.Create(testCtx(), dto.CreatePlatformDTO{
		Name:         "Switch",
		ReleaseYear:  2017,
		Manufacturer: "Nintendo",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := env.platforms.GetByID(testCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Switch", got.Name)
}

func TestPlatformService_DuplicateName(t *testing.T) {
	env := newTestEnv(t)

	in := dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2017, Manufacturer: "Nintendo"}
	_, err := env.platforms.Create(testCtx(), in)
	require.NoError(t, err)

	_, err = env.platforms.Create(testCtx(), in)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPlatformService_UpdateKeepsOwnName(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.platforms.Create(testCtx(), dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2017, Manufacturer: "Nintendo"})
	require.NoError(t, err)

	// Updating without renaming must not trip the uniqueness check.
	updated, err := env.platforms.Update(testCtx(), created.ID, dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2019, Manufacturer: "Nintendo"})
	require.NoError(t, err)
	assert.Equal(t, 2019, updated.ReleaseYear)
}

func TestPlatformService_RenameOntoExistingName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.platforms.Create(testCtx(), dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2017, Manufacturer: "Nintendo"})
	require.NoError(t, err)
	other, err := env.platforms.Create(testCtx(), dto.CreatePlatformDTO{Name: "PS5", ReleaseYear: 2020, Manufacturer: "Sony"})
	require.NoError(t, err)

	_, err = env.platforms.Update(testCtx(), other.ID, dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2020, Manufacturer: "Sony"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPlatformService_WriteEvictsCatalogRegion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.platforms.Create(testCtx(), dto.CreatePlatformDTO{Name: "Switch", ReleaseYear: 2017, Manufacturer: "Nintendo"})
	require.NoError(t, err)

	// Prime the catalog listing.
	listed, err := env.platforms.GetAll(testCtx())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 1, env.views.Len(cache.RegionCatalog))

	_, err = env.platforms.Create(testCtx(), dto.CreatePlatformDTO{Name: "PS5", ReleaseYear: 2020, Manufacturer: "Sony"})
	require.NoError(t, err)

	listed, err = env.platforms.GetAll(testCtx())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestGenreService_DuplicateName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.genres.Create(testCtx(), dto.CreateGenreDTO{Name: "RPG"})
	require.NoError(t, err)

	_, err = env.genres.Create(testCtx(), dto.CreateGenreDTO{Name: "RPG"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeveloperService_DeleteUnknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.developers.Delete(testCtx(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
