package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gamerate/internal/cache"
	"gamerate/internal/httpapi/models"
	"gamerate/internal/httpapi/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full service stack against an in-memory database, one
// per test.
type testEnv struct {
	db           *gorm.DB
	views        *cache.ViewCache
	games        GameService
	interactions InteractionService
	platforms    PlatformService
	developers   DeveloperService
	genres       GenreService
	users        UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Platform{},
		&models.Developer{},
		&models.Genre{},
		&models.GamePlatform{},
		&models.GameDeveloper{},
		&models.GameGenre{},
		&models.Interaction{},
	))

	views := cache.NewViewCache(cache.Options{
		TTL:        time.Minute,
		MaxEntries: 100,
		NumShards:  4,
	})

	gameRepo := repository.NewGameRepo(db)
	assocRepo := repository.NewAssociationRepo(db)
	interactionRepo := repository.NewInteractionRepository(db)

	return &testEnv{
		db:           db,
		views:        views,
		games:        NewGameService(gameRepo, assocRepo, interactionRepo, views),
		interactions: NewInteractionService(interactionRepo, gameRepo),
		platforms:    NewPlatformService(repository.NewPlatformRepo(db), views),
		developers:   NewDeveloperService(repository.NewDeveloperRepo(db), views),
		genres:       NewGenreService(repository.NewGenreRepo(db), views),
		users:        NewUserService(repository.NewUserRepository(db)),
	}
}

// seedCatalog inserts three platforms, one developer and one genre and
// returns their ids in insertion order.
func (e *testEnv) seedCatalog(t *testing.T) (platformIDs []int64, developerID, genreID int64) {
	t.Helper()

	for i := 1; i <= 3; i++ {
		p := models.Platform{
			Name:         fmt.Sprintf("Platform %d", i),
			ReleaseYear:  2015 + i,
			Manufacturer: "TestCo",
		}
		require.NoError(t, e.db.Create(&p).Error)
		platformIDs = append(platformIDs, p.ID)
	}

	d := models.Developer{Name: "Test Studio", Founded: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), Country: "JP"}
	require.NoError(t, e.db.Create(&d).Error)

	g := models.Genre{Name: "Adventure"}
	require.NoError(t, e.db.Create(&g).Error)

	return platformIDs, d.ID, g.ID
}

func (e *testEnv) seedUser(t *testing.T, name string) int64 {
	t.Helper()
	u := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "irrelevant-hash",
		Role:     models.RoleUser,
		Active:   true,
	}
	require.NoError(t, e.db.Create(&u).Error)
	return u.ID
}

// seedInteraction writes straight through the repository so tests can set up
// ratings without going through the service-level checks.
func (e *testEnv) seedInteraction(t *testing.T, userID, gameID int64, score *int) {
	t.Helper()
	i := models.Interaction{UserID: userID, GameID: gameID, Score: score, Played: true}
	require.NoError(t, e.db.Create(&i).Error)
}

func intPtr(v int) *int { return &v }

func testCtx() context.Context { return context.Background() }
