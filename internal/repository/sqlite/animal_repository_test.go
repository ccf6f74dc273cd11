package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critterbook/internal/domain"
)

func strptr(s string) *string { return &s }

func TestAnimalCreate_ValidSession(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok-valid", time.Hour)

	animal, err := r.Create(ctx, "tok-valid", domain.AnimalFields{
		FirstName: "Rex",
		Type:      "dog",
		Accessory: strptr("collar"),
	})
	require.NoError(t, err)
	require.NotNil(t, animal)
	assert.NotZero(t, animal.ID)
	assert.Equal(t, "Rex", animal.FirstName)
	assert.Equal(t, "dog", animal.Type)
	require.NotNil(t, animal.Accessory)
	assert.Equal(t, "collar", *animal.Accessory)

	animals, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, animals, 1)
	assert.Equal(t, animal.ID, animals[0].ID)
}

func TestAnimalCreate_NilAccessoryStoredAsNull(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok", time.Hour)

	animal, err := r.Create(ctx, "tok", domain.AnimalFields{FirstName: "Rex", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, animal)
	assert.Nil(t, animal.Accessory)

	// confirm NULL in the row itself, not ""
	var accessory *string
	require.NoError(t, db.QueryRow(`SELECT accessory FROM animals WHERE id = ?`, animal.ID).Scan(&accessory))
	assert.Nil(t, accessory)

	got, err := r.GetByID(ctx, animal.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Accessory)
}

func TestAnimalMutations_ExpiredOrUnknownToken(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok-expired", -time.Hour)
	seedSession(t, db, userID, "tok-valid", time.Hour)

	existing, err := r.Create(ctx, "tok-valid", domain.AnimalFields{FirstName: "Rex", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, existing)

	for _, token := range []string{"tok-expired", "tok-unknown", ""} {
		created, err := r.Create(ctx, token, domain.AnimalFields{FirstName: "Ghost", Type: "cat"})
		require.NoError(t, err)
		assert.Nil(t, created, "token %q must not create", token)

		updated, err := r.Update(ctx, token, existing.ID, domain.AnimalFields{FirstName: "Changed", Type: "cat"})
		require.NoError(t, err)
		assert.Nil(t, updated, "token %q must not update", token)

		deleted, err := r.Delete(ctx, token, existing.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted, "token %q must not delete", token)
	}

	// relation unchanged: one row, untouched fields
	assert.Equal(t, 1, countRows(t, db, "animals"))
	got, err := r.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rex", got.FirstName)
	assert.Equal(t, "dog", got.Type)
}

func TestAnimalUpdate_ValidSession(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok", time.Hour)

	animal, err := r.Create(ctx, "tok", domain.AnimalFields{FirstName: "Rex", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, animal)

	updated, err := r.Update(ctx, "tok", animal.ID, domain.AnimalFields{
		FirstName: "Max",
		Type:      "dog",
		Accessory: strptr("bandana"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, animal.ID, updated.ID)
	assert.Equal(t, "Max", updated.FirstName)
	require.NotNil(t, updated.Accessory)
	assert.Equal(t, "bandana", *updated.Accessory)
}

func TestAnimalUpdate_MissingID(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok", time.Hour)

	updated, err := r.Update(ctx, "tok", 9999, domain.AnimalFields{FirstName: "Max", Type: "dog"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestAnimalDelete_ReturnsPriorState(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok", time.Hour)

	animal, err := r.Create(ctx, "tok", domain.AnimalFields{
		FirstName: "Rex",
		Type:      "dog",
		Accessory: strptr("collar"),
	})
	require.NoError(t, err)
	require.NotNil(t, animal)

	deleted, err := r.Delete(ctx, "tok", animal.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, animal.ID, deleted.ID)
	assert.Equal(t, "Rex", deleted.FirstName)
	require.NotNil(t, deleted.Accessory)
	assert.Equal(t, "collar", *deleted.Accessory)

	assert.Equal(t, 0, countRows(t, db, "animals"))
}

func TestAnimalReads_RequireNoSession(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice")
	seedSession(t, db, userID, "tok", time.Hour)

	animal, err := r.Create(ctx, "tok", domain.AnimalFields{FirstName: "Rex", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, animal)

	// no token anywhere near the read paths
	animals, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, animals, 1)

	got, err := r.GetByID(ctx, animal.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *animal, *got)
}

func TestAnimalGetByID_Missing(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)

	got, err := r.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAnimalCreate_AnySessionMayMutate(t *testing.T) {
	db := setupDB(t)
	r := NewAnimalRepository(db)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	bobID := seedUser(t, db, "bob")
	seedSession(t, db, aliceID, "tok-alice", time.Hour)
	seedSession(t, db, bobID, "tok-bob", time.Hour)

	animal, err := r.Create(ctx, "tok-alice", domain.AnimalFields{FirstName: "Rex", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, animal)

	// animals carry no owner: bob's session mutates alice's creation
	updated, err := r.Update(ctx, "tok-bob", animal.ID, domain.AnimalFields{FirstName: "Max", Type: "dog"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Max", updated.FirstName)
}
