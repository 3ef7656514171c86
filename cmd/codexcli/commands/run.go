package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/codexcli/internal/config"
	"github.com/opencode-ai/codexcli/internal/credentials"
	"github.com/opencode-ai/codexcli/internal/event"
	"github.com/opencode-ai/codexcli/internal/logging"
	"github.com/opencode-ai/codexcli/internal/provider"
	"github.com/opencode-ai/codexcli/pkg/types"
)

var (
	runModel  string
	runSystem string
)

var runCmd = &cobra.Command{
	Use:   "run [prompt...]",
	Short: "Run a one-shot completion",
	Long: `Run a one-shot completion against the codex binary and stream the
result to stdout.

Examples:
  codexcli run "explain this error"
  codexcli run --system "answer in French" "hello"
  echo "hello" | codexcli run`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runModel, "model", "m", "", "Model variant to request")
	runCmd.Flags().StringVar(&runSystem, "system", "", "System message prepended to the request")
}

func runRun(cmd *cobra.Command, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		return errors.New("no prompt given")
	}

	p, err := newProvider()
	if err != nil {
		return err
	}

	var messages []types.Message
	if runSystem != "" {
		messages = append(messages, types.Message{Role: types.RoleSystem, Content: runSystem})
	}
	messages = append(messages, types.Message{Role: types.RoleUser, Content: prompt})

	stream, err := p.StreamCompletion(cmd.Context(), types.CompletionRequest{
		Model:    runModel,
		Messages: messages,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	return drain(stream)
}

// drain prints stream events until the terminal event.
func drain(stream provider.CompletionStream) error {
	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch e := ev.(type) {
		case types.TextEvent:
			fmt.Println(e.Text)
		case types.ToolUseEvent:
			logging.Info().
				Str("id", e.ID).
				Str("tool", e.Name).
				Bool("complete", e.InputComplete).
				RawJSON("input", e.Input).
				Msg("tool use")
		case types.StopEvent:
			logging.Debug().Str("reason", string(e.Reason)).Msg("completion stopped")
		default:
			return fmt.Errorf("unexpected completion event %T", ev)
		}
	}
}

// newProvider wires settings, credentials and the provider the way a
// host application would.
func newProvider() (*provider.CodexProvider, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	settings := config.Load(workDir)

	bus := event.NewBus()
	store := credentials.NewStore(bus)

	p := provider.New(settings, store)
	if err := p.Authenticate(); err != nil {
		if errors.Is(err, credentials.ErrCredentialsNotFound) {
			return nil, fmt.Errorf("not authenticated: add api_key to ~/.codex/config.toml")
		}
		return nil, err
	}
	return p, nil
}
