package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamecollector/backend/internal/models"
	"gamecollector/backend/internal/store"
)

type fixture struct {
	systems    *store.GameSystemStore
	games      *store.VideoGameStore
	systemSvc  *GameSystemService
	videoGames *VideoGameService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	systems := store.NewGameSystemStore()
	games := store.NewVideoGameStore()
	systems.Init([]models.GameSystem{
		{ID: "gs-nes", Name: "Nintendo NES", Description: "8-bit"},
		{ID: "gs-md", Name: "Sega Megadrive", Description: "16-bit"},
	})
	games.Init([]models.VideoGame{
		{ID: "vg-smb", Name: "Super Mario Bros", Developer: "Nintendo", GameSystem: "Nintendo NES", Genre: "Platform", Year: 1985},
		{ID: "vg-sonic", Name: "Sonic the Hedgehog", Developer: "Sega", GameSystem: "Sega Megadrive", Genre: "Platform", Year: 1991},
	})

	logger, _ := test.NewNullLogger()
	gsSvc := NewGameSystemService(systems, games, logger)
	return fixture{
		systems:    systems,
		games:      games,
		systemSvc:  gsSvc,
		videoGames: NewVideoGameService(games, gsSvc, logger),
	}
}

func TestRuleErrorIs(t *testing.T) {
	var err error = ErrDeleteVideoGamesExist
	assert.ErrorIs(t, err, ErrDeleteVideoGamesExist)
	assert.NotErrorIs(t, err, ErrDeleteGameSystemNotFound)

	var rerr *RuleError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, KindVideoGamesAssociated, rerr.Kind)
	assert.Equal(t, rerr.Message, err.Error())
}

// region --- Game systems ---

func TestGameSystemCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.systemSvc.Create(models.GameSystemInput{Name: "Sony PlayStation", Description: "32-bit", Image: "psx"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sony PlayStation", created.Name)
	assert.Equal(t, 3, f.systems.Len())

	got, ok := f.systemSvc.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestGameSystemCreateDuplicateName(t *testing.T) {
	f := newFixture(t)

	_, err := f.systemSvc.Create(models.GameSystemInput{Name: "Nintendo NES"})

	assert.ErrorIs(t, err, ErrCreateGameSystemSameName)
	assert.Equal(t, 2, f.systems.Len())
}

func TestGameSystemCreateNameIsCaseSensitive(t *testing.T) {
	f := newFixture(t)

	_, err := f.systemSvc.Create(models.GameSystemInput{Name: "nintendo nes"})

	assert.NoError(t, err)
	assert.Equal(t, 3, f.systems.Len())
}

func TestGameSystemUpdate(t *testing.T) {
	f := newFixture(t)

	updated, err := f.systemSvc.Update(models.GameSystem{ID: "gs-nes", Name: "Nintendo NES", Description: "Famicom"})
	require.NoError(t, err)
	assert.Equal(t, "Famicom", updated.Description)

	renamed, err := f.systemSvc.Update(models.GameSystem{ID: "gs-nes", Name: "Famicom"})
	require.NoError(t, err)
	assert.Equal(t, "Famicom", renamed.Name)
}

func TestGameSystemUpdateUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.systemSvc.Update(models.GameSystem{ID: "missing", Name: "x"})

	assert.ErrorIs(t, err, ErrUpdateGameSystemNotFound)
}

func TestGameSystemUpdateNameOwnedByOther(t *testing.T) {
	f := newFixture(t)

	_, err := f.systemSvc.Update(models.GameSystem{ID: "gs-nes", Name: "Sega Megadrive"})

	assert.ErrorIs(t, err, ErrUpdateGameSystemSameName)
	got, _ := f.systems.GetByID("gs-nes")
	assert.Equal(t, "Nintendo NES", got.Name)
}

func TestGameSystemRenameDoesNotCascade(t *testing.T) {
	f := newFixture(t)

	_, err := f.systemSvc.Update(models.GameSystem{ID: "gs-nes", Name: "Famicom"})
	require.NoError(t, err)

	smb, _ := f.games.GetByID("vg-smb")
	assert.Equal(t, "Nintendo NES", smb.GameSystem)
	assert.NoError(t, f.systemSvc.Delete("gs-nes"))
}

func TestGameSystemDeleteWithVideoGames(t *testing.T) {
	f := newFixture(t)

	err := f.systemSvc.Delete("gs-nes")

	assert.ErrorIs(t, err, ErrDeleteVideoGamesExist)
	assert.Equal(t, 2, f.systems.Len())
}

func TestGameSystemDeleteUnknownID(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.systemSvc.Delete("missing"), ErrDeleteGameSystemNotFound)
	assert.Equal(t, 2, f.systems.Len())
}

type vanishingStore struct {
	*store.GameSystemStore
}

func (vanishingStore) Delete(string) bool { return false }

func TestGameSystemDeleteVanished(t *testing.T) {
	systems := store.NewGameSystemStore()
	systems.Init([]models.GameSystem{{ID: "gs-1", Name: "Lonely"}})
	svc := NewGameSystemService(vanishingStore{systems}, store.NewVideoGameStore(), nil)

	assert.ErrorIs(t, svc.Delete("gs-1"), ErrDeleteGameSystemNotFound)
}

func TestEndToEndDeleteOrder(t *testing.T) {
	f := newFixture(t)

	listed := f.systemSvc.List(store.GameSystemQuery{Sort: "name"})
	require.Len(t, listed, 2)
	assert.Equal(t, "Nintendo NES", listed[0].Name)
	assert.Equal(t, "Sega Megadrive", listed[1].Name)

	assert.ErrorIs(t, f.systemSvc.Delete("gs-nes"), ErrDeleteVideoGamesExist)

	require.NoError(t, f.videoGames.Delete("vg-smb"))
	require.NoError(t, f.systemSvc.Delete("gs-nes"))
	assert.Equal(t, 1, f.systems.Len())
}

// endregion

// region --- Video games ---

func TestVideoGameCreate(t *testing.T) {
	f := newFixture(t)
	in := models.VideoGameInput{Name: "Zelda", Developer: "Nintendo", GameSystem: "Nintendo NES", Genre: "Adventure", Year: 1986, Image: "zelda"}

	created, err := f.videoGames.Create(in)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, in.Name, created.Name)
	assert.Equal(t, in.Year, created.Year)
	assert.Equal(t, 3, f.games.Len())
}

func TestVideoGameCreateUnknownGameSystem(t *testing.T) {
	f := newFixture(t)

	_, err := f.videoGames.Create(models.VideoGameInput{Name: "Halo", GameSystem: "Xbox"})

	assert.ErrorIs(t, err, ErrCreateGameSystemNotFound)
	assert.Equal(t, 2, f.games.Len())
}

func TestVideoGameCreateDuplicatePair(t *testing.T) {
	f := newFixture(t)

	_, err := f.videoGames.Create(models.VideoGameInput{Name: "Super Mario Bros", GameSystem: "Nintendo NES"})
	assert.ErrorIs(t, err, ErrCreateVideoGameSameName)

	_, err = f.videoGames.Create(models.VideoGameInput{Name: "Super Mario Bros", GameSystem: "Sega Megadrive"})
	assert.NoError(t, err)
}

func TestVideoGameUpdateSkipsRuleChecks(t *testing.T) {
	f := newFixture(t)

	updated, err := f.videoGames.Update(models.VideoGame{ID: "vg-sonic", Name: "Super Mario Bros", GameSystem: "Nintendo NES"})

	require.NoError(t, err)
	assert.Equal(t, "Nintendo NES", updated.GameSystem)
	assert.Len(t, f.videoGames.List(store.VideoGameQuery{Name: &updated.Name}), 2)

	_, err = f.videoGames.Update(models.VideoGame{ID: "vg-sonic", Name: "x", GameSystem: "Atari"})
	assert.NoError(t, err)
}

func TestVideoGameUpdateUnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.videoGames.Update(models.VideoGame{ID: "missing"})

	assert.ErrorIs(t, err, ErrUpdateVideoGameNotFound)
}

func TestVideoGameDelete(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.videoGames.Delete("missing"), ErrDeleteVideoGameNotFound)
	assert.Equal(t, 2, f.games.Len())

	require.NoError(t, f.videoGames.Delete("vg-sonic"))
	_, ok := f.videoGames.GetByID("vg-sonic")
	assert.False(t, ok)
}

func TestVideoGameListFields(t *testing.T) {
	f := newFixture(t)

	got := f.videoGames.ListFields(store.VideoGameQuery{Sort: "year", Fields: "name,year"})

	assert.Equal(t, []map[string]any{
		{"name": "Super Mario Bros", "year": 1985},
		{"name": "Sonic the Hedgehog", "year": 1991},
	}, got)
}

// endregion

func TestConcurrentCreatesKeepNamesUnique(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.systemSvc.Create(models.GameSystemInput{Name: "Neo Geo"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 3, f.systems.Len())
}
