package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/mis-libros/pkg/config"
)

// Flag global: sobrescribe DATABASE_URL / DB_*.
var databaseURL string

// NewRootCmd crea el comando raíz de librosctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "librosctl",
		Short:         "Administración de Mis Libros",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "connection string de PostgreSQL (por defecto DATABASE_URL o DB_*)")

	cmd.AddCommand(NewMigrateCmd(defaultMigrator))
	cmd.AddCommand(NewUsuariosCmd())
	return cmd
}

// connString resuelve la conexión: flag, luego configuración.
func connString() string {
	if databaseURL != "" {
		return databaseURL
	}
	return config.LoadDB().ConnectionString()
}
