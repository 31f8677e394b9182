package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/terraincognita07/mlimi/internal/config"
	"github.com/terraincognita07/mlimi/internal/db"
	"github.com/terraincognita07/mlimi/internal/models"
	"github.com/terraincognita07/mlimi/internal/security"
	"github.com/terraincognita07/mlimi/internal/services"
)

const (
	temporaryPasswordLength   = 12
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

var errPhoneRequired = errors.New("a valid --phone is required")

func newResetPasswordCommand(state *commandState) *cobra.Command {
	var phone string
	command := &cobra.Command{
		Use:   "reset-password",
		Short: "Replace a user's password with a generated temporary one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(state.viper, false)
			if err != nil {
				return err
			}
			database, closeDatabase, err := state.openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase()

			return resetPassword(db.NewUserRepository(database), phone, bcrypt.DefaultCost, cmd.OutOrStdout(), state.logger)
		},
	}
	command.Flags().StringVar(&phone, "phone", "", "phone number of the account to reset")
	_ = command.MarkFlagRequired("phone")
	return command
}

type passwordResetStore interface {
	FindByPhone(phone string) (models.User, error)
	UpdatePasswordHash(userID uint, passwordHash string) error
}

// resetPassword prints the temporary password to out once. Only its bcrypt
// hash is stored and nothing about it is logged.
func resetPassword(users passwordResetStore, rawPhone string, hashCost int, out io.Writer, logger *zap.Logger) error {
	phone := services.NormalizePhone(rawPhone)
	if phone == "" {
		return errPhoneRequired
	}

	user, err := users.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user with phone %s not found", phone)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), hashCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}
	if err := users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	logger.Info("password reset", zap.Uint("user_id", user.ID))
	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	return nil
}

// generateTemporaryPassword draws until the result passes the login password
// policy, which wants at least one letter and one digit.
func generateTemporaryPassword(length int) (string, error) {
	if length < services.MinPasswordLength {
		length = services.MinPasswordLength
	}

	for {
		candidate, err := security.RandomToken(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if services.ValidatePasswordStrength(candidate) == nil {
			return candidate, nil
		}
	}
}
