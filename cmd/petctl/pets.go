package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pet-manager/internal/domain/pets"
	"pet-manager/internal/platform/httpclient"
	"pet-manager/internal/ui/listview"
)

func newPetsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Listar, agregar, editar y borrar mascotas",
	}

	cmd.AddCommand(newPetsListCmd(root))
	cmd.AddCommand(newPetsAddCmd(root))
	cmd.AddCommand(newPetsEditCmd(root))
	cmd.AddCommand(newPetsRemoveCmd(root))

	return cmd
}

func newPetsListCmd(root *rootFlags) *cobra.Command {
	var (
		jsonOutput bool
		search     string
		species    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar mascotas (con búsqueda y filtro opcionales)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			items, err := c.ListPets(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing pets: %w", err)
			}

			items = filterPets(items, search, species)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			return renderPetsTable(cmd, items)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "salida JSON")
	cmd.Flags().StringVarP(&search, "search", "s", "", "texto a buscar en nombre o especie")
	cmd.Flags().StringVar(&species, "species", "all", "filtrar por especie")

	return cmd
}

func newPetsAddCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME SPECIES AGE",
		Short: "Agregar una mascota",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pets.ParseForm(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			c, err := root.client()
			if err != nil {
				return err
			}
			p, err := c.CreatePet(cmd.Context(), *d.Name, *d.Species, *d.Age)
			if err != nil {
				return fmt.Errorf("adding pet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %d %s\n", p.ID, p.Name)
			return nil
		},
	}
}

func newPetsEditCmd(root *rootFlags) *cobra.Command {
	var (
		name    string
		species string
		age     int
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Cambiar campos de una mascota (solo los flags dados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var in httpclient.PetInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("species") {
				in.Species = &species
			}
			if cmd.Flags().Changed("age") {
				in.Age = &age
			}
			if in.Name == nil && in.Species == nil && in.Age == nil {
				return fmt.Errorf("nothing to change: use --name, --species or --age")
			}

			c, err := root.client()
			if err != nil {
				return err
			}
			p, err := c.UpdatePet(cmd.Context(), id, in)
			if err != nil {
				return fmt.Errorf("editing pet %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %d %s (%s, %d)\n", p.ID, p.Name, p.Species, p.Age)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nuevo nombre")
	cmd.Flags().StringVar(&species, "species", "", "nueva especie")
	cmd.Flags().IntVar(&age, "age", 0, "nueva edad")

	return cmd
}

func newPetsRemoveCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Borrar una mascota",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := root.client()
			if err != nil {
				return err
			}
			if err := c.DeletePet(cmd.Context(), id); err != nil {
				return fmt.Errorf("removing pet %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", id)
			return nil
		},
	}
}

func renderPetsTable(cmd *cobra.Command, items []httpclient.Pet) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No pets found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tAGE")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.Species, p.Age)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d pet(s)\n", len(items))
	return nil
}

func filterPets(items []httpclient.Pet, search, species string) []httpclient.Pet {
	list := make([]pets.Pet, 0, len(items))
	for _, p := range items {
		list = append(list, pets.Pet{ID: p.ID, Name: p.Name, Species: p.Species, Age: p.Age})
	}

	v := listview.Render(list, search, species)
	out := make([]httpclient.Pet, 0, v.Count)
	for _, p := range v.Items {
		out = append(out, httpclient.Pet{ID: p.ID, Name: p.Name, Species: p.Species, Age: p.Age})
	}
	return out
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pet id %q", s)
	}
	return id, nil
}
