// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ptladmin/cli/internal/backend"
)

var (
	internoNome      string
	internoMatricula string
	internoCPF       string
	internoStatus    string
	internoConfirm   bool
)

// internosCmd groups the intern record operations.
var internosCmd = &cobra.Command{
	Use:   "internos",
	Short: "Manage intern records",
	Long: `The internos command manages the intern records kept by the PTL backend.
All subcommands require an authenticated session.`,
}

var internosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all intern records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		internos, err := s.api.ListInternos(cmd.Context())
		if err != nil {
			return err
		}
		if len(internos) == 0 {
			pterm.Println("No intern records found.")
			return nil
		}

		data := pterm.TableData{{"ID", "Nome", "Matrícula", "Status"}}
		for _, in := range internos {
			data = append(data, []string{in.ID, in.Nome, in.Matricula, in.Status})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var internosGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one intern record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		in, err := s.api.GetInterno(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printInterno(in)
		return nil
	},
}

var internosCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an intern record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if internoNome == "" || internoMatricula == "" {
			return fmt.Errorf("--nome and --matricula are required")
		}
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		in, err := s.api.CreateInterno(cmd.Context(), backend.Interno{
			Nome:      internoNome,
			Matricula: internoMatricula,
			CPF:       internoCPF,
			Status:    internoStatus,
		})
		if err != nil {
			return err
		}
		pterm.Printf("✅ Created intern record %s\n", in.ID)
		return nil
	},
}

var internosUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an intern record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		// Start from the stored record so unset flags keep their values.
		cur, err := s.api.GetInterno(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if internoNome != "" {
			cur.Nome = internoNome
		}
		if internoMatricula != "" {
			cur.Matricula = internoMatricula
		}
		if internoCPF != "" {
			cur.CPF = internoCPF
		}
		if internoStatus != "" {
			cur.Status = internoStatus
		}

		in, err := s.api.UpdateInterno(cmd.Context(), args[0], *cur)
		if err != nil {
			return err
		}
		pterm.Printf("✅ Updated intern record %s\n", in.ID)
		return nil
	},
}

var internosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an intern record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !internoConfirm {
			return fmt.Errorf("refusing to delete without --yes")
		}
		s, err := requireAuth(cmd.Context())
		if err != nil {
			return err
		}

		if err := s.api.DeleteInterno(cmd.Context(), args[0]); err != nil {
			return err
		}
		pterm.Printf("✅ Deleted intern record %s\n", args[0])
		return nil
	},
}

func init() {
	internosCreateCmd.Flags().StringVar(&internoNome, "nome", "", "Full name")
	internosCreateCmd.Flags().StringVar(&internoMatricula, "matricula", "", "Registration number")
	internosCreateCmd.Flags().StringVar(&internoCPF, "cpf", "", "CPF document number")
	internosCreateCmd.Flags().StringVar(&internoStatus, "status", "", "Record status")

	internosUpdateCmd.Flags().StringVar(&internoNome, "nome", "", "Full name")
	internosUpdateCmd.Flags().StringVar(&internoMatricula, "matricula", "", "Registration number")
	internosUpdateCmd.Flags().StringVar(&internoCPF, "cpf", "", "CPF document number")
	internosUpdateCmd.Flags().StringVar(&internoStatus, "status", "", "Record status")

	internosDeleteCmd.Flags().BoolVar(&internoConfirm, "yes", false, "Confirm the deletion")

	internosCmd.AddCommand(internosListCmd, internosGetCmd, internosCreateCmd, internosUpdateCmd, internosDeleteCmd)
	rootCmd.AddCommand(internosCmd)
}

// printInterno renders one record as a label/value box.
func printInterno(in *backend.Interno) {
	data := pterm.TableData{
		{"ID", in.ID},
		{"Nome", in.Nome},
		{"Matrícula", in.Matricula},
		{"CPF", in.CPF},
		{"Status", in.Status},
		{"Criado em", in.CreatedAt},
		{"Atualizado em", in.UpdatedAt},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}
