package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/piwi3910/cratepack/internal/project"
)

func newCatalogueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Inspect and manage container catalogues and presets",
	}

	cmd.AddCommand(newCatalogueListCmd())
	cmd.AddCommand(newCatalogueExportCmd())
	cmd.AddCommand(newCatalogueSaveCmd())

	return cmd
}

func newCatalogueListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in container catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range model.DefaultCatalogue() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-28s %7.0fx%.0fx%.0f cm  max %8.0fg  fill %.0f-%.0f%%\n",
					c.ContainerType, c.Description, c.Width, c.Height, c.Length, c.MaxWeightG, c.MinFillPercentage, c.MaxFillPercentage)
			}
			return nil
		},
	}
}

func newCatalogueExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the built-in container catalogue as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(model.DefaultCatalogue(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal catalogue: %w", err)
			}
			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(outPath, data, 0644)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func newCatalogueSaveCmd() *cobra.Command {
	var presetsPath, name, containersPath string
	cmd := &cobra.Command{
		Use:   "save-preset",
		Short: "Save a named container catalogue preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("save-preset requires --name")
			}
			if presetsPath == "" {
				presetsPath = project.DefaultCataloguePresetsPath()
			}

			containers := model.DefaultCatalogue()
			if containersPath != "" {
				data, err := os.ReadFile(containersPath)
				if err != nil {
					return fmt.Errorf("read container catalogue: %w", err)
				}
				if err := json.Unmarshal(data, &containers); err != nil {
					return fmt.Errorf("parse container catalogue: %w", err)
				}
			}

			store, err := project.LoadCataloguePresets(presetsPath)
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			store.Add(model.NewCataloguePreset(name, containers))
			if err := project.SaveCataloguePresets(presetsPath, store); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved preset %q to %s\n", name, presetsPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&presetsPath, "presets", "", "presets file (default: ~/.cratepack/catalogue_presets.json)")
	cmd.Flags().StringVar(&name, "name", "", "preset name")
	cmd.Flags().StringVar(&containersPath, "containers", "", "container catalogue JSON file (built-in catalogue if omitted)")
	return cmd
}
