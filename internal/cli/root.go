package cli

import (
	"skill-match/internal/config"
	"skill-match/internal/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const appName = "skillmatch"

// Actual version can be specified in build command.
var version = "unknown"

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own flag bindings.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           appName,
		Short:         "skillmatch matches candidate skill profiles against a job corpus",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	_ = v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(
		newServeCmd(v),
		newMigrateCmd(v),
		newSeedCmd(v),
		newScoreCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads the environment config and builds a logger, letting the
// --json and --debug flags switch on what the environment left off.
func setup(v *viper.Viper) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg.Log.JSON = cfg.Log.JSON || v.GetBool("json")
	cfg.Log.Debug = cfg.Log.Debug || v.GetBool("debug")

	lg, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, lg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s version: %s\n", appName, version)
		},
	}
}
