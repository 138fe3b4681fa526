package geveze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixml/geveze/api/pkg/data"
)

func newVersionCommand() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(data.GetVersion())
		},
	}
	return versionCmd
}
