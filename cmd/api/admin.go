package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/repository/postgresql"
	authService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")

		password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		cfg, db, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		if err != nil {
			return err
		}

		svc := authService.NewAuthService(postgresql.NewAccountRepository(db), JWTService)
		admin, err := svc.CreateAdmin(cmd.Context(), auth.CreateAdminRequest{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("creating admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %d <%s>\n", admin.ID, admin.Email)
		return nil
	},
}

// promptPassword reads the password twice without echo on a terminal, or
// once per line when stdin is piped.
func promptPassword(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		fmt.Fprint(out, "Confirm password: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
