package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-manager/internal/domain/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Ver o cambiar el tema guardado",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Mostrar el tema efectivo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			t, err := c.GetTheme(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set light|dark",
		Short:     "Guardar el tema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := theme.Parse(args[0])
			if !ok {
				return fmt.Errorf("theme must be light or dark, got %q", args[0])
			}

			c, err := root.client()
			if err != nil {
				return err
			}
			got, err := c.SetTheme(cmd.Context(), string(t))
			if err != nil {
				return fmt.Errorf("setting theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	})

	return cmd
}
