package commands

import (
	"github.com/spf13/cobra"

	"github.com/oil-oil/agent-skills/internal/serve"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int
	var host string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the skill's references over HTTP",
		Long: `Start a local HTTP server exposing the skill's reference tree.

Endpoints:
  /api/health            liveness probe
  /api/catalog           the sync catalog as JSON
  /references/<path>     files from the references directory`,
		Example: `  # Serve on the default port
  skillkit serve

  # Custom port
  skillkit serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			cfg := cmdCtx.Cfg

			serveCfg := cfg.GetServeConfig()
			if cmd.Flags().Changed("port") {
				serveCfg.Port = port
			}
			if cmd.Flags().Changed("host") {
				serveCfg.Host = host
			}

			srv := serve.NewServer(serve.Config{
				SkillDir: cfg.SkillDir,
				Host:     serveCfg.Host,
				Port:     serveCfg.Port,
				Logger:   cmdCtx.Logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind")

	return cmd
}
