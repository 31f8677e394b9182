package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/models"
	"github.com/terraincognita07/mlimi/internal/services"
)

type resetStoreStub struct {
	users     map[string]models.User
	hashes    map[uint]string
	updateErr error
}

func (stub *resetStoreStub) FindByPhone(phone string) (models.User, error) {
	user, ok := stub.users[phone]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *resetStoreStub) UpdatePasswordHash(userID uint, passwordHash string) error {
	if stub.updateErr != nil {
		return stub.updateErr
	}
	stub.hashes[userID] = passwordHash
	return nil
}

func newResetStoreStub() *resetStoreStub {
	return &resetStoreStub{
		users: map[string]models.User{
			"+265991234567": {ID: 7, Phone: "+265991234567", PasswordHash: "old"},
		},
		hashes: map[uint]string{},
	}
}

func TestResetPasswordStoresHashAndPrintsTemporaryPassword(t *testing.T) {
	store := newResetStoreStub()
	var out bytes.Buffer

	err := resetPassword(store, "+265 991 234 567", bcrypt.MinCost, &out, zap.NewNop())
	require.NoError(t, err)

	var temporary string
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary password: "); ok {
			temporary = value
		}
	}
	require.Len(t, temporary, temporaryPasswordLength)
	assert.NoError(t, services.ValidatePasswordStrength(temporary))

	hash := store.hashes[7]
	require.NotEmpty(t, hash)
	assert.NotEqual(t, temporary, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(temporary)))
}

func TestResetPasswordRejectsUnknownOrInvalidPhone(t *testing.T) {
	store := newResetStoreStub()

	err := resetPassword(store, "abc", bcrypt.MinCost, &bytes.Buffer{}, zap.NewNop())
	assert.ErrorIs(t, err, errPhoneRequired)

	err = resetPassword(store, "0888000000", bcrypt.MinCost, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, store.hashes)
}

func TestResetPasswordPrintsNothingWhenUpdateFails(t *testing.T) {
	store := newResetStoreStub()
	store.updateErr = errors.New("disk full")
	var out bytes.Buffer

	err := resetPassword(store, "+265991234567", bcrypt.MinCost, &out, zap.NewNop())
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestGenerateTemporaryPasswordHonoursPolicy(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	require.NoError(t, err)
	assert.Len(t, password, services.MinPasswordLength)

	for attempt := 0; attempt < 50; attempt++ {
		password, err := generateTemporaryPassword(temporaryPasswordLength)
		require.NoError(t, err)
		require.NoError(t, services.ValidatePasswordStrength(password))
		for _, char := range password {
			require.True(t, strings.ContainsRune(temporaryPasswordAlphabet, char), "unexpected char %q", char)
		}
	}
}
