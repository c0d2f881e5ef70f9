package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/eligibility"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate the scenario catalog",
	}
	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogShowCmd())
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogExportCmd())
	return cmd
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeLog, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			filter := eligibility.ForCatalog(cat)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-30s  %-48s  %8s  %-8s  %s\n", "ID", "Diagnosis", "Criteria", "Guarded", "Healthy")
			fmt.Fprintln(out, strings.Repeat("─", 110))

			scenarios := cat.Scenarios()
			for _, s := range scenarios {
				title := s.Title()
				if r := []rune(title); len(r) > 48 {
					title = string(r[:45]) + "..."
				}
				fmt.Fprintf(out, "%-30s  %-48s  %8d  %-8s  %s\n",
					s.ID, title, len(s.Accepted), yesNo(filter.Guarded(s.ID)), yesNo(s.Healthy))
			}

			fmt.Fprintf(out, "\n%d scenarios, %d questions\n", len(scenarios), cat.Total())
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <scenario-id>",
		Short: "Show one scenario's accepted answers, exclusions and management",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeLog, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			s, err := cat.Scenario(args[0])
			if err != nil {
				return err
			}
			writeScenario(cmd, cat, s)
			return nil
		},
	}
}

func writeScenario(cmd *cobra.Command, cat *catalog.Catalog, s catalog.Scenario) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", s.Title())
	fmt.Fprintf(out, "ID:       %s\n", s.ID)
	if s.Context != "" {
		fmt.Fprintf(out, "Context:  %s\n", s.Context)
	}
	if s.Healthy {
		fmt.Fprintln(out, "Outcome:  baseline healthy")
	}

	fmt.Fprintln(out, "\nAccepted answers:")
	for _, q := range cat.Questions() {
		codes, ok := s.Accepted[q.ID]
		if !ok {
			fmt.Fprintf(out, "  %-4s %-16s (not scored)\n", q.ID, q.Label)
			continue
		}
		parts := make([]string, len(codes))
		for i, c := range codes {
			parts[i] = string(c)
		}
		fmt.Fprintf(out, "  %-4s %-16s %s\n", q.ID, q.Label, strings.Join(parts, " | "))
	}

	var excluded []string
	for _, r := range cat.Exclusions() {
		if r.Scenario != s.ID {
			continue
		}
		parts := make([]string, len(r.Codes))
		for i, c := range r.Codes {
			parts[i] = string(c)
		}
		excluded = append(excluded, fmt.Sprintf("  %s in {%s}", r.Question, strings.Join(parts, ", ")))
	}
	if len(excluded) > 0 {
		fmt.Fprintln(out, "\nExcluded when:")
		for _, e := range excluded {
			fmt.Fprintln(out, e)
		}
	}

	fmt.Fprintln(out, "\nManagement:")
	for _, m := range s.Management {
		fmt.Fprintf(out, "  - %s\n", m)
	}
}

func newCatalogValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file for integrity problems",
		Long: "Loads a catalog and reports every integrity problem: unknown\n" +
			"questions, illegal codes, empty management plans and the like.\n" +
			"Without --file the configured catalog is checked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if err := cmd.Flags().Set("catalog", file); err != nil {
					return err
				}
			}
			cat, closeLog, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d questions, %d scenarios, %d exclusions\n",
				cat.Total(), len(cat.Scenarios()), len(cat.Exclusions()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog file to validate")
	return cmd
}

func newCatalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the built-in catalog as YAML, a starting point for --catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(catalog.SeedYAML())
			return err
		},
	}
}
