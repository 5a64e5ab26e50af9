package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mis-libros/internal/infrastructure/postgres"
	"github.com/jhoicas/mis-libros/pkg/config"
)

// NewUsuariosCmd lista los usuarios con su rol.
func NewUsuariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usuarios",
		Short: "Lista los usuarios registrados y su rol",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db := config.LoadDB()
			db.DatabaseURL = connString()
			pool, err := postgres.NewPool(ctx, db)
			if err != nil {
				return err
			}
			defer pool.Close()

			list, err := postgres.NewUserRepository(pool).ListWithRoles(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSUARIO\tEMAIL\tROL")
			for _, u := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role.Name)
			}
			return w.Flush()
		},
	}
}
