package chatrecap

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sjzar/chatrecap/pkg/version"
)

var versionM bool

func init() {
	versionCmd.Flags().BoolVarP(&versionM, "module", "m", false, "module version information")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of chatrecap",
	// version 不需要加载配置
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.GetMore(versionM))
	},
}
