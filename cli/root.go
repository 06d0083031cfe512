// Package cli provides the cobra commands of jasm-ls.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/config"
	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
	"github.gatech.edu/ECEInnovation/JASM-Language-Server/util"
	"github.gatech.edu/ECEInnovation/JASM-Language-Server/vocabulary"
)

// app is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	fs      afero.Fs
	version string

	configPath     string
	vocabularyPath string
	debug          bool

	conf     *config.Config
	resolver *resolver.Resolver
}

// NewRootCommand builds the jasm-ls command tree. Files are read through fs.
func NewRootCommand(fs afero.Fs, version string) *cobra.Command {
	a := &app{fs: fs, version: version}

	rootCmd := &cobra.Command{
		Use:   "jasm-ls",
		Short: "Language server and query tool for jasm assembly",
		Long: `jasm-ls answers hover, go-to-definition and completion queries for jasm
assembly documents. Run "jasm-ls serve" to start the language server, or use
the query subcommands to inspect a file from the shell.`,
		Version:           version,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&a.vocabularyPath, "vocabulary", "", "path to a dialect vocabulary file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(a.newServeCommand())
	rootCmd.AddCommand(a.newHoverCommand())
	rootCmd.AddCommand(a.newDefinitionCommand())
	rootCmd.AddCommand(a.newCompleteCommand())
	rootCmd.AddCommand(a.newCheckCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.Load(a.fs, a.configPath)
	if err != nil {
		return err
	}
	a.conf = conf

	level := conf.Log.Level
	if a.debug {
		level = zerolog.LevelDebugValue
	}
	logger, err := util.NewLogger(cmd.ErrOrStderr(), level, conf.Log.JSON)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))

	r, err := a.newResolver()
	if err != nil {
		return err
	}
	a.resolver = r

	logger.Debug().
		Str("config", a.configPath).
		Int("vocabulary", r.Vocabulary().Len()).
		Bool("documentMacros", conf.DocumentMacrosEnabled()).
		Msg("configured")
	return nil
}

// newResolver loads the vocabulary named by --vocabulary, falling back to
// the config file and then to the built-in jasm tables.
func (a *app) newResolver() (*resolver.Resolver, error) {
	path := a.vocabularyPath
	if path == "" {
		path = a.conf.Vocabulary
	}

	var vocab *vocabulary.Vocabulary
	if path != "" {
		v, err := vocabulary.Load(a.fs, path)
		if err != nil {
			return nil, errors.Errorf("could not set up resolver: %w", err)
		}
		vocab = v
	}
	return resolver.New(vocab, resolver.WithDocumentMacros(a.conf.DocumentMacrosEnabled())), nil
}
