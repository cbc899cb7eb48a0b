package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/customer-portal/internal/application/auth"
	"github.com/jhoicas/customer-portal/internal/application/dto"
)

// newLoginCmd inicia sesión y guarda el token.
func newLoginCmd(rt *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión contra la API",
		Long: `Envía las credenciales a la API y guarda el token de acceso.
Si no se pasa --password se lee de la entrada estándar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("leer password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			uc := auth.NewAuthUseCase(rt.client, rt.cfg.Auth.Secret)
			resp, err := uc.Login(cmd.Context(), dto.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := rt.store.Save(resp.AccessToken); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sesión iniciada, expira %s\n", formatExpiry(resp.ExpiresAt))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email del operador")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (por defecto se lee de stdin)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión (borra el token guardado)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sesión cerrada")
			return nil
		},
	}
}
