// Command gic is a first-order logic prover: an interactive SLD
// resolution engine over Horn-clause knowledge bases written in the
// .gic surface syntax.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LucasGrasso/gic/internal/config"
	"github.com/LucasGrasso/gic/internal/repl"
	"github.com/LucasGrasso/gic/internal/unify"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// The reasoning core logs through logrus's package-level logger, so
	// configure that one rather than a private instance.
	log := logrus.StandardLogger()

	root := &cobra.Command{
		Use:           "gic",
		Short:         "An interactive first-order logic prover",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("file", "", "a .gic knowledge-base file to load at startup")
	loadConfig := config.Bind(root.PersistentFlags())

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		configureLogging(log, cfg.NoColor, cfg.Verbose)

		session, err := newSession(cmd, log, cfg.LoadLibrary)
		if err != nil {
			return err
		}
		return repl.Interactive(session, cfg.HistoryFile, os.Stdout, log)
	}

	root.AddCommand(newReplCmd(root), newLoadCmd(log, loadConfig), newQueryCmd(log, loadConfig))
	return root
}

// newReplCmd is an explicit alias for the root command's default action
// (entering the interactive session), for users who prefer naming it.
func newReplCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "enter the interactive session (same as running gic with no arguments)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.RunE(cmd, args)
		},
	}
}

func newLoadCmd(log *logrus.Logger, loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "load <path.gic>",
		Short: "load a knowledge-base file, then enter the interactive session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			configureLogging(log, cfg.NoColor, cfg.Verbose)

			session, err := newSession(cmd, log, cfg.LoadLibrary)
			if err != nil {
				return err
			}
			if err := session.LoadFile(args[0]); err != nil {
				return err
			}
			return repl.Interactive(session, cfg.HistoryFile, os.Stdout, log)
		},
	}
}

func newQueryCmd(log *logrus.Logger, loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "query <formula>",
		Short: "run a single query in batch mode, printing every answer until exhaustion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			configureLogging(log, cfg.NoColor, cfg.Verbose)

			session, err := newSession(cmd, log, cfg.LoadLibrary)
			if err != nil {
				return err
			}

			found := false
			err = session.Query(context.Background(), args[0], func(answer *unify.Substitution) bool {
				found = true
				fmt.Println(repl.FormatAnswer(answer))
				return true
			})
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("false")
			}
			return nil
		},
	}
}

func newSession(cmd *cobra.Command, log *logrus.Logger, loadLibrary bool) (*repl.Session, error) {
	session := repl.New(log)
	if loadLibrary {
		if err := session.LoadLibrary(); err != nil {
			return nil, err
		}
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		if err := session.LoadFile(file); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// configureLogging selects a text formatter for interactive TTY sessions
// and a JSON formatter otherwise, the way hashicorp-nomad's agent command
// picks its log output format, and raises the level to Debug when verbose
// is set (the default is Info, but the reasoning core itself never logs
// above Debug, so the default REPL stays quiet).
func configureLogging(log *logrus.Logger, noColor, verbose bool) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: noColor})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}
