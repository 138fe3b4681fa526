package geveze

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/cli/agent"
	"github.com/helixml/geveze/api/pkg/cli/catalog"
	"github.com/helixml/geveze/api/pkg/cli/room"
	"github.com/helixml/geveze/api/pkg/cli/settings"
	"github.com/helixml/geveze/api/pkg/system"
)

var Fatal = FatalErrorHandler

func NewRootCmd() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:   getCommandLineExecutable(),
		Short: "Geveze",
		Long:  `Voice agent gateway and session bootstrap client`,
		PersistentPreRun: func(*cobra.Command, []string) {
			system.SetupLogging(os.Getenv("LOG_LEVEL"))
		},
	}

	// gateway client commands
	RootCmd.AddCommand(agent.NewStatusCmd())
	RootCmd.AddCommand(agent.NewWakeCmd())
	RootCmd.AddCommand(room.NewTokenCmd())
	RootCmd.AddCommand(room.NewRoomsCmd())
	RootCmd.AddCommand(settings.New())
	RootCmd.AddCommand(catalog.NewVoicesCmd())
	RootCmd.AddCommand(catalog.NewModelsCmd())

	RootCmd.AddCommand(newServeCmd())
	RootCmd.AddCommand(newConnectCmd())
	RootCmd.AddCommand(newVersionCommand())

	return RootCmd
}

func Execute() {
	RootCmd := NewRootCmd()
	RootCmd.SetContext(context.Background())
	RootCmd.SetOutput(os.Stdout)

	if err := RootCmd.Execute(); err != nil {
		Fatal(RootCmd, err.Error(), 1)
	}
}
