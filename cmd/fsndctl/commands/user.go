package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/request"
	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/pkg/jwthelper"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
	"github.com/fsnd-projects/fsnd-api/internal/service"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errEmptyPassword = errors.New("password must not be empty")
)

func newCreateUserCmd() *cobra.Command {
	var req request.SignupRequest

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a barista or manager account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				pwd, err := promptPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				req.Password = pwd
			}
			req.ConfirmPassword = req.Password

			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid user -> %w", err)
			}

			_, db, err := openDB()
			if err != nil {
				return err
			}

			svc := service.NewAuthService(repository.NewUserRepository(dao.NewUserDAO(db)))
			user, err := svc.Signup(cmd.Context(), domain.User{
				Email:    req.Email,
				Password: req.Password,
				Name:     req.Name,
				Role:     req.Role,
			})
			if err != nil {
				return fmt.Errorf("svc.Signup -> %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s %s with id %d\n", user.Role, user.Email, user.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&req.Role, "role", domain.RoleBarista, "barista or manager")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password, prompted for when empty")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func promptPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter password: ")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("term.ReadPassword -> %w", err)
	}
	if len(pwd) == 0 {
		return "", errEmptyPassword
	}

	return string(pwd), nil
}

func newTokenCmd() *cobra.Command {
	var (
		userID uint
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a token carrying the permissions of a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.IsValidRole(role) {
				return fmt.Errorf("%w: %q", service.ErrInvalidRole, role)
			}

			conf, err := loadConfig()
			if err != nil {
				return err
			}

			if ttl == 0 {
				ttl = conf.API.JWTTTL
			}

			token, err := jwthelper.GenerateToken(
				[]byte(conf.API.JWTSigningKey),
				userID,
				"fsndctl",
				domain.PermissionsForRole(role),
				conf.API.JWTIssuer,
				ttl,
			)
			if err != nil {
				return fmt.Errorf("jwthelper.GenerateToken -> %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().UintVar(&userID, "user-id", 0, "user_id claim")
	cmd.Flags().StringVar(&role, "role", domain.RoleManager, "barista or manager")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, defaults to api.jwt_ttl")

	return cmd
}
