package services

import (
	"testing"
	"time"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetAccountMissing(t *testing.T) {
	_, err := GetAccount("nobody_here")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))
}

func TestLoadOrInitAccountIsIdempotent(t *testing.T) {
	// The identity provider is unreachable in tests, so creation runs the
	// degraded path with a random handle.
	first, err := LoadOrInitAccount("ext_idempotent")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := LoadOrInitAccount("ext_idempotent")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)
}

func TestLoadOrInitAccountLosesFirstAccessRace(t *testing.T) {
	const externalID = "ext_race_winner"

	// A concurrent first-access request wins the creation between our
	// lookup and create; we must come back with its row, not an error
	stolen := false
	require.NoError(t, database.C.Callback().Create().Before("gorm:begin_transaction").Register("rival_account_insert", func(tx *gorm.DB) {
		if account, ok := tx.Statement.Dest.(*models.Account); ok && account.ExternalID == externalID && !stolen {
			stolen = true
			database.C.Exec(
				"INSERT INTO accounts (name, nick, description, avatar, external_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				"race_winner", "Race Winner", "", "", externalID, time.Now(), time.Now(),
			)
		}
	}))
	defer database.C.Callback().Create().Remove("rival_account_insert")

	account, err := LoadOrInitAccount(externalID)
	require.NoError(t, err)
	assert.Equal(t, "race_winner", account.Name)

	var count int64
	require.NoError(t, database.C.Model(&models.Account{}).Where("external_id = ?", externalID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	account := seedAccount(t, "profile_owner")

	updated, err := UpdateProfile(account, ProfileFields{
		Nick:        lo.ToPtr("New Nick"),
		Description: lo.ToPtr("hello there"),
		Tags:        []string{"music", "chess"},
	})
	require.NoError(t, err)

	assert.Equal(t, "profile_owner", updated.Name)
	assert.Equal(t, "New Nick", updated.Nick)
	assert.Equal(t, "hello there", updated.Description)
	require.Len(t, updated.Tags, 2)

	reloaded, err := GetAccount("profile_owner")
	require.NoError(t, err)
	assert.Equal(t, "New Nick", reloaded.Nick)
	assert.Len(t, reloaded.Tags, 2)
}

func TestUpdateProfileReplacesTags(t *testing.T) {
	account := seedAccount(t, "profile_retagged")

	_, err := UpdateProfile(account, ProfileFields{Tags: []string{"soccer", "anime"}})
	require.NoError(t, err)

	updated, err := UpdateProfile(account, ProfileFields{Tags: []string{"anime"}})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "anime", updated.Tags[0].Alias)
}

func TestUpdateProfileHandleConflict(t *testing.T) {
	seedAccount(t, "taken_handle")
	account := seedAccount(t, "handle_wanter")

	_, err := UpdateProfile(account, ProfileFields{Name: lo.ToPtr("taken_handle")})
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeConflict))

	// The losing update leaves the stored profile untouched
	var stored models.Account
	require.NoError(t, database.C.Where("id = ?", account.ID).First(&stored).Error)
	assert.Equal(t, "handle_wanter", stored.Name)
}

func TestUpdateProfileRejectsBlankHandle(t *testing.T) {
	account := seedAccount(t, "handle_keeper")

	_, err := UpdateProfile(account, ProfileFields{Name: lo.ToPtr("")})
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeInvalidInput))
}

func TestGetProfileDegradesWithoutIdentity(t *testing.T) {
	account := seedAccount(t, "degraded_profile")
	require.NoError(t, database.C.Model(&account).Update("avatar", "https://example.com/stored.png").Error)

	// The provider is unreachable; the stored avatar survives the merge
	profile, err := GetProfile("degraded_profile")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/stored.png", profile.Avatar)
}
