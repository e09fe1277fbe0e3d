package repository

import (
	"InfoCity/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedRepositories_Finders(t *testing.T) {
	session, _ := setupTestSession(t)
	towns := NewTownRepository(session)
	users := NewUserRepository(session)
	adverts := NewAdvertRepository(session)

	require.NoError(t, session.NewTransaction())
	town := toulon()
	_, err := towns.Create(town)
	require.NoError(t, err)
	_, err = towns.Create(&models.Town{BaseModel: models.BaseModel{ID: 6}, Name: "Nice", Country: "France"})
	require.NoError(t, err)
	_, err = towns.Create(&models.Town{BaseModel: models.BaseModel{ID: 9}, Name: "Torino", Country: "Italia"})
	require.NoError(t, err)

	paul := models.NewUser(456, "paul", "martin", "paulmartin@mail.fr", "pass")
	town.AddUser(paul)
	_, err = users.Create(paul)
	require.NoError(t, err)
	_, err = users.Create(models.NewUserBuilder().SetID(65).SetFirstName("test").SetLastName("retest").Build())
	require.NoError(t, err)

	for _, id := range []uint{1, 2, 3} {
		_, err = adverts.Create(models.NewAdvertBuilder().SetID(id).SetMessage("m").SetType("sport").SetTown(town).Build())
		require.NoError(t, err)
	}
	require.NoError(t, session.Commit())

	found, err := towns.FindByName("Toulon")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uint(125), found.ID)

	missing, err := towns.FindByName("Marseille")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	french, err := towns.FindByCountry("France")
	require.NoError(t, err)
	require.Len(t, french, 2)
	assert.Equal(t, "Nice", french[0].Name)

	user, err := users.FindByEmail("paulmartin@mail.fr")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(456), user.ID)

	inTown, err := users.FindByTown(125)
	require.NoError(t, err)
	assert.Len(t, inTown, 1)

	limited, err := adverts.FindByTown(125, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	sport, err := adverts.FindByType("sport")
	require.NoError(t, err)
	assert.Len(t, sport, 3)
}
