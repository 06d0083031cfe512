package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/languageServer"
)

type serveFlags struct {
	tcp  bool
	ws   bool
	addr string
}

func (a *app) newServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the language server",
		Long: `Start the language server. Without flags it speaks LSP over stdin and
stdout. --tcp and --ws listen on the address from the config file
(listen.tcp, listen.websocket) unless --addr is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tcp, "tcp", false, "accept clients over TCP")
	cmd.Flags().BoolVar(&flags.ws, "ws", false, "accept clients over WebSocket")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address for --tcp or --ws")
	cmd.MarkFlagsMutuallyExclusive("tcp", "ws")

	return cmd
}

func (a *app) serve(cmd *cobra.Command, flags *serveFlags) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := languageServer.NewServer(a.resolver, languageServer.Options{
		Version:     a.version,
		ForwardLogs: a.debug,
	})

	var err error
	switch {
	case flags.tcp:
		addr := flags.addr
		if addr == "" {
			addr = a.conf.Listen.TCP
		}
		err = srv.ListenAndServeTCP(ctx, addr)
	case flags.ws:
		addr := flags.addr
		if addr == "" {
			addr = a.conf.Listen.WebSocket
		}
		err = srv.ListenAndServeWebSocket(ctx, addr)
	default:
		if flags.addr != "" {
			return errors.New("--addr needs --tcp or --ws")
		}
		zerolog.Ctx(ctx).Info().Msg("serving on stdio")
		err = srv.ListenAndServe(ctx)
	}
	if err != nil {
		return errors.Errorf("error running language server: %w", err)
	}
	return nil
}
