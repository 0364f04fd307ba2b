package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/internal/unify"
)

const helpText = `Commands:
  load <path.gic>       load a knowledge-base file into the program
  program                list the clauses loaded so far (library excluded)
  query "<formula>"       run a query; press Y to see more answers, N to stop
  help, h                 show this message
  exit, quit              leave the session
`

// Interactive runs the read-eval-print loop against session, reading
// input via a readline.Instance with persisted history, until the user
// exits or the input stream closes.
func Interactive(session *Session, historyFile string, out io.Writer, log *logrus.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "gic> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(out, "gic — a first-order logic prover. Type 'help' for commands.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if shouldExit := dispatch(session, line, out, rl, log); shouldExit {
			return nil
		}
	}
}

// dispatch handles one command line and reports whether the session
// should exit.
func dispatch(session *Session, line string, out io.Writer, rl *readline.Instance, log *logrus.Logger) bool {
	switch {
	case line == "exit" || line == "quit":
		return true

	case line == "help" || line == "h":
		fmt.Fprint(out, helpText)

	case line == "program":
		for _, c := range session.Program() {
			fmt.Fprintln(out, c.String()+";")
		}

	case strings.HasPrefix(line, "load "):
		path := strings.TrimSpace(strings.TrimPrefix(line, "load "))
		if err := session.LoadFile(path); err != nil {
			fmt.Fprintln(out, "error:", err)
		}

	case strings.HasPrefix(line, "query "):
		formula := unquote(strings.TrimSpace(strings.TrimPrefix(line, "query ")))
		runInteractiveQuery(session, formula, out, rl, log)

	default:
		fmt.Fprintf(out, "unrecognized command %q; type 'help' for the command list\n", line)
	}
	return false
}

// runInteractiveQuery drives one query to completion, printing each
// answer and prompting "Continue? (Y/N)" between them, stopping early on
// "N" exactly as the cooperative enumeration model requires.
func runInteractiveQuery(session *Session, formula string, out io.Writer, rl *readline.Instance, log *logrus.Logger) {
	ctx := context.Background()
	found := false

	err := session.Query(ctx, formula, func(answer *unify.Substitution) bool {
		found = true
		fmt.Fprintln(out, FormatAnswer(answer))
		rl.SetPrompt("Continue? (Y/N): ")
		resp, rerr := rl.Readline()
		rl.SetPrompt("gic> ")
		if rerr != nil {
			return false
		}
		resp = strings.TrimSpace(strings.ToLower(resp))
		return resp == "y" || resp == "yes"
	})
	if err != nil {
		log.WithError(err).Error("query aborted")
		fmt.Fprintln(out, "error:", err)
		return
	}
	if !found {
		fmt.Fprintln(out, "false")
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
