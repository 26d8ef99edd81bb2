package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/medgraph-assistant/infrastructure/config"
)

// newEnvCmd creates the env command.
func (a *App) newEnvCmd() *cobra.Command {
	var envPath string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Reload and print the current configuration",
		Long: `Reload the .env file and print every configuration pair the
assistant derives from it. Useful for checking what the server and
shell will actually see.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := config.Reload(envPath)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				fmt.Fprintf(a.stdout, "%s=%s\n", pair[0], pair[1])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envPath, "env", config.DefaultEnvPath, "Path to the .env file")

	return cmd
}
