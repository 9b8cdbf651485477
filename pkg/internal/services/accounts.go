package services

import (
	"errors"
	"fmt"

	"github.com/unilink-app/timeline/pkg/internal/database"
	"github.com/unilink-app/timeline/pkg/internal/identity"
	"github.com/unilink-app/timeline/pkg/internal/models"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).Preload("Tags").First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, status.NotFound(fmt.Sprintf("account %s was not found", name))
		}
		return account, status.Storage("unable to get account", err)
	}
	return account, nil
}

// LoadOrInitAccount returns the local account linked to an external
// identity, creating it on first authenticated access. The handle and
// profile fields are seeded from the identity provider when it answers;
// a silent provider only degrades the seed, never the creation.
func LoadOrInitAccount(externalID string) (models.Account, error) {
	var account models.Account
	err := database.C.Where("external_id = ?", externalID).First(&account).Error
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, status.Storage("unable to look up account", err)
	}

	account = models.Account{
		Name:       fmt.Sprintf("member-%s", lo.RandomString(8, lo.LowerCaseLettersCharset)),
		ExternalID: externalID,
	}
	if user, err := identity.GetUserCached(externalID); err == nil {
		if len(user.Username) > 0 {
			account.Name = user.Username
		}
		account.Nick = fmt.Sprintf("%s %s", user.FirstName, user.LastName)
		account.Avatar = user.ImageURL
	} else {
		log.Warn().Err(err).Str("identity", externalID).Msg("Unable to seed new account from identity provider...")
	}

	if err := database.C.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either the handle seed is taken or a concurrent request won
			// the first-access race; retry once with a random handle, then
			// re-read by external id.
			account.Name = fmt.Sprintf("member-%s", lo.RandomString(8, lo.LowerCaseLettersCharset))
			if err := database.C.Create(&account).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					var existing models.Account
					if err := database.C.Where("external_id = ?", externalID).First(&existing).Error; err != nil {
						return existing, status.Storage("unable to re-read account after creation race", err)
					}
					return existing, nil
				}
				return account, status.Storage("unable to create account", err)
			}
		} else {
			return account, status.Storage("unable to create account", err)
		}
	}

	log.Info().Uint("id", account.ID).Str("identity", externalID).Msg("Created account on first access.")
	return account, nil
}

// GetProfile merges the stored account with a freshly fetched avatar from
// the identity provider. A failing provider degrades the avatar to the
// stored one instead of failing the read.
func GetProfile(name string) (models.Account, error) {
	account, err := GetAccount(name)
	if err != nil {
		return account, err
	}

	if avatar, err := identity.GetUserAvatar(account.ExternalID); err != nil {
		log.Warn().Err(err).Str("account", account.Name).Msg("Unable to resolve avatar from identity provider...")
	} else if len(avatar) > 0 {
		account.Avatar = avatar
	}

	return account, nil
}

type ProfileFields struct {
	Name        *string
	Nick        *string
	Description *string
	Avatar      *string
	Tags        []string
}

// UpdateProfile applies the requested profile fields as one record update.
// Handle uniqueness is left to the store's unique index; a violation means
// another identity owns the handle already and nothing is changed.
func UpdateProfile(account models.Account, fields ProfileFields) (models.Account, error) {
	if fields.Name != nil {
		if len(*fields.Name) == 0 {
			return account, status.InvalidInput("handle cannot be blank")
		}
		account.Name = *fields.Name
	}
	if fields.Nick != nil {
		account.Nick = *fields.Nick
	}
	if fields.Description != nil {
		account.Description = *fields.Description
	}
	if fields.Avatar != nil {
		account.Avatar = *fields.Avatar
	}

	if err := database.C.Omit("Tags").Save(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account, status.Conflict(fmt.Sprintf("handle %s is already taken", account.Name))
		}
		return account, status.Storage("unable to update account", err)
	}

	if fields.Tags != nil {
		tags, err := ResolveTags(fields.Tags)
		if err != nil {
			return account, err
		}
		if err := database.C.Model(&account).Association("Tags").Replace(tags); err != nil {
			return account, status.Storage("unable to update account tags", err)
		}
		account.Tags = tags
	}

	return account, nil
}
