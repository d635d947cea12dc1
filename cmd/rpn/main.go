package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/config"
	"github.com/zephyrtronium/rpn/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := new(app)
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// app holds flags and state shared by the commands.
type app struct {
	cfgPath string
	inname  string
	sep     string
	echo    bool

	cfg     config.Config
	log     *slog.Logger
	logfile io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "rpn [expr...]",
		Short: "Evaluate reverse Polish notation expressions",
		Long: `rpn evaluates space-separated reverse Polish notation expressions and
prints the values left on the stack. Each argument is one expression. With no
arguments, expressions are read one per line from --in or stdin; if stdin is a
terminal, rpn starts the interactive calculator instead.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runEval,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default $RPN_CONFIG or "+config.DefaultPath()+")")
	root.Flags().StringVar(&a.inname, "in", "", `input file, one expression per line ("-" for stdin)`)
	root.Flags().StringVar(&a.sep, "sep", "", "separator between values (default from config)")
	root.Flags().BoolVar(&a.echo, "echo", false, "print each expression before its result")

	root.AddCommand(
		&cobra.Command{
			Use:   "ops",
			Short: "List operators and constants",
			Args:  cobra.NoArgs,
			RunE:  a.runOps,
		},
		&cobra.Command{
			Use:   "tui",
			Short: "Start the interactive calculator",
			Args:  cobra.NoArgs,
			RunE:  a.runTUI,
		},
	)
	return root
}

// setup loads config and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cmd.Flags().Changed("sep") {
		a.cfg.UI.Separator = a.sep
	}
	level, _ := cfg.Log.SlogLevel()
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logfile = f
		w = f
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	a.log.Debug("config loaded", "source", cfg.Source, "command", cmd.Name())
	return nil
}

// close releases the log file. It runs after the command whether or not the
// command succeeded.
func (a *app) close() error {
	if a.logfile == nil {
		return nil
	}
	err := a.logfile.Close()
	a.logfile = nil
	return err
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	std := len(args) == 0
	if std && a.inname == "" && isTerminal(cmd.InOrStdin()) {
		return a.runTUI(cmd, args)
	}

	in, err := infile(cmd, a.inname, std)
	if err != nil {
		return err
	}
	if in != nil {
		if f, ok := in.(*os.File); ok && f != os.Stdin {
			defer f.Close()
		}
		a.log.Info("evaluating lines", "in", a.inname)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			a.print(out, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
	for _, arg := range args {
		a.print(out, arg)
	}
	return nil
}

// print writes the display line of one expression. Failed expressions print
// their error message and do not stop evaluation.
func (a *app) print(w io.Writer, expr string) {
	res := rpn.Display(expr, a.cfg.UI.Separator)
	if a.echo {
		fmt.Fprintf(w, "%s : %s\n", strings.TrimSpace(expr), res)
		return
	}
	fmt.Fprintln(w, res)
}

// infile opens the named input. An empty name means stdin only when std is
// set; "-" always means stdin.
func infile(cmd *cobra.Command, inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return cmd.InOrStdin(), nil
	}
	return nil, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	a.log.Info("starting tui")
	m := tui.New(tui.Options{
		Separator:    a.cfg.UI.Separator,
		HistoryLimit: a.cfg.History.Limit,
		Keypad:       a.cfg.UI.Keypad,
		Logger:       a.log,
	})
	if err := tui.Run(cmd.Context(), m, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (a *app) runOps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "operators:")
	for _, op := range rpn.Operators() {
		fmt.Fprintf(out, "  %-16s %-14s %d\n", strings.Join(op.Aliases, " "), op.Name, op.Arity)
	}
	fmt.Fprintln(out, "constants:")
	for _, c := range rpn.Constants() {
		fmt.Fprintf(out, "  %-16s %s = %v\n", strings.Join(c.Aliases, " "), c.Name, c.Value)
	}
	return nil
}
