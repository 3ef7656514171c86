package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/codexcli/internal/credentials"
	"github.com/opencode-ai/codexcli/internal/provider"
	"github.com/opencode-ai/codexcli/pkg/types"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	registry := provider.NewRegistry()
	registry.Register(provider.New(types.Settings{}, credentials.NewStore(nil)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tMODEL\tTOOLS\tIMAGES\t")

	for _, p := range registry.List() {
		for _, model := range p.Models() {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\t\n",
				p.ID(), model.ID, model.SupportsTools, model.SupportsImages)
		}
	}

	return w.Flush()
}
