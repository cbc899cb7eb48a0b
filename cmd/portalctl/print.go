package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/customer-portal/internal/application/dto"
)

type printOptions struct {
	preview bool
	outDir  string
}

func newPrintCmd(rt *app) *cobra.Command {
	opts := &printOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Generar reportes PDF",
	}
	cmd.PersistentFlags().BoolVar(&opts.preview, "preview", false, "abrir en el visor en lugar de guardar")
	cmd.PersistentFlags().StringVarP(&opts.outDir, "out", "o", "", "carpeta de destino (por defecto descargas XDG)")

	cmd.AddCommand(newPrintCustomerCmd(rt, opts))
	cmd.AddCommand(newPrintFilterCmd(rt, opts))
	return cmd
}

func newPrintCustomerCmd(rt *app, opts *printOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "customer [customer-id]",
		Short: "Ficha PDF de un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, err := rt.sessionContext(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			files := rt.files(opts.outDir)
			uc, err := rt.reportUseCase()
			if err != nil {
				return err
			}
			if err := uc.PrintCustomer(ctx, args[0], files, opts.preview); err != nil {
				return expiredCause(ctx, err)
			}
			if !opts.preview {
				fmt.Fprintln(cmd.OutOrStdout(), files.Saved())
			}
			return nil
		},
	}
}

func newPrintFilterCmd(rt *app, opts *printOptions) *cobra.Command {
	var in dto.CustomerFilterRequest

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Listado PDF de clientes filtrados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop, err := rt.sessionContext(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			files := rt.files(opts.outDir)
			uc, err := rt.reportUseCase()
			if err != nil {
				return err
			}
			res, err := uc.PrintFilter(ctx, in, files, opts.preview)
			if err != nil {
				return expiredCause(ctx, err)
			}
			if res.NoData {
				fmt.Fprintln(cmd.ErrOrStderr(), "aviso:", res.Message)
				return nil
			}
			if !opts.preview {
				fmt.Fprintln(cmd.OutOrStdout(), files.Saved())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Status, "status", "", "ACTIVE | HOLD | CLOSED")
	cmd.Flags().StringVar(&in.DateFrom, "from", "", "fecha de registro desde (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.DateTo, "to", "", "fecha de registro hasta (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.AssignedToName, "assigned", "", "nombre del operador asignado")
	return cmd
}
