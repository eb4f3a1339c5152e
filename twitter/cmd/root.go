package cmd

import (
	"os"
	"path/filepath"

	"github.com/dichro/tuit/twitter/api"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRoot wraps d in a cobra command. Flag parsing is off: the dispatcher
// owns the whole argument vector, since its flags are the commands.
func NewRoot(d *Dispatcher) *cobra.Command {
	return &cobra.Command{
		Use:                "tuit flag [args]",
		Short:              "Twitter from the command line",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Run: func(cmd *cobra.Command, args []string) {
			d.Dispatch(cmd.OutOrStdout(), args)
		},
	}
}

func Execute() {
	cfg := ConfigFrom(viper.GetViper())
	if err := configureLogging(viper.GetViper()); err != nil {
		glog.Exit(err)
	}
	if !cfg.Credentials.Complete() {
		glog.Warning("twitter credentials are incomplete; API calls will fail")
	}
	tw := api.New(cfg.Credentials)
	defer tw.Close()

	d := NewDispatcher(filepath.Base(os.Args[0]), tw, cfg.Username)
	d.MaxArgs = cfg.MaxArgs
	if err := NewRoot(d).Execute(); err != nil {
		glog.Exit(err)
	}
}
