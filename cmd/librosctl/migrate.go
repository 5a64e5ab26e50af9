package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mis-libros/internal/infrastructure/postgres"
)

// Migrator operaciones de migración que usa el comando.
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

// MigratorFactory abre un Migrator para la URL dada.
type MigratorFactory func(url string) (Migrator, error)

func defaultMigrator(url string) (Migrator, error) {
	return postgres.NewMigrator(url)
}

// NewMigrateCmd crea el subcomando migrate con up, down y version.
func NewMigrateCmd(factory MigratorFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema",
	}

	run := func(fn func(cmd *cobra.Command, m Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			m, err := factory(connString())
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(cmd, m)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: run(func(cmd *cobra.Command, m Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			cmd.Println("Migraciones aplicadas")
			return nil
		}),
	})

	var force bool
	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte todas las migraciones (borra los datos)",
		RunE: run(func(cmd *cobra.Command, m Migrator) error {
			if !force {
				return fmt.Errorf("down borra todas las tablas; repetir con --force")
			}
			if err := m.Down(); err != nil {
				return err
			}
			cmd.Println("Migraciones revertidas")
			return nil
		}),
	}
	down.Flags().BoolVar(&force, "force", false, "confirma la reversión")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada",
		RunE: run(func(cmd *cobra.Command, m Migrator) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				cmd.Printf("versión %d (dirty)\n", v)
				return nil
			}
			cmd.Printf("versión %d\n", v)
			return nil
		}),
	})
	return cmd
}
