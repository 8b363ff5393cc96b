package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [setup-type]",
	Short: "List checklist templates or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChecklist,
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, k := range e.lib.SetupTypes() {
			t, _ := e.lib.Get(k)
			fmt.Fprintf(out, "%-12s %s (%d items)\n", k, t.Name, len(t.Items))
		}
		return nil
	}

	t, ok := e.lib.Get(args[0])
	if !ok {
		return fmt.Errorf("no checklist template for setup %q", args[0])
	}
	fmt.Fprintf(out, "%s\n", t.Name)
	for _, d := range t.Items {
		mark := " "
		if d.Required {
			mark = "*"
		}
		fmt.Fprintf(out, " %s [%-10s] %-50s w=%.1f\n", mark, d.Category, d.Text, d.Weight)
	}
	return nil
}
