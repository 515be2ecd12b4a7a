package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harvest-export/website/internal/auth"
	"github.com/harvest-export/website/internal/config"
	"github.com/harvest-export/website/internal/repository"
	"github.com/harvest-export/website/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAdminCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}
	cmd.AddCommand(newAdminCreateCmd(e), newAdminPasswordCmd(e))
	return cmd
}

func newAdminCreateCmd(e *env) *cobra.Command {
	var name string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create an admin account",
		Long: `Create an admin account that can sign in to the CMS.

The password is read from the first line of standard input with --password-stdin,
otherwise from the SITECTL_PASSWORD environment variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}
			db, log, err := e.openDB(cmd.Context())
			if err != nil {
				return err
			}
			user, err := authService(db, log).CreateAdmin(cmd.Context(), args[0], name, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

func newAdminPasswordCmd(e *env) *cobra.Command {
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "password <email>",
		Short: "Set a new password for an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}
			db, log, err := e.openDB(cmd.Context())
			if err != nil {
				return err
			}
			if err := authService(db, log).SetPassword(cmd.Context(), args[0], password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", strings.ToLower(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

// authService needs no signing key; sitectl never issues tokens
func authService(db *gorm.DB, log *zap.Logger) *service.AuthService {
	tokens := auth.NewJWTManager(&config.AuthConfig{})
	return service.NewAuthService(repository.NewAdminUserRepository(db), tokens, log)
}

func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if !fromStdin {
		if p := os.Getenv("SITECTL_PASSWORD"); p != "" {
			return p, nil
		}
		return "", fmt.Errorf("no password given: use --password-stdin or set SITECTL_PASSWORD")
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password on stdin")
	}
	return password, nil
}
