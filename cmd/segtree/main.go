package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/repl"
	"github.com/npillmayer/segtree/scriptfile"
	"github.com/spf13/cobra"
)

var (
	treeSize int
	dotOut   string

	rootCmd = &cobra.Command{
		Use:   "segtree",
		Short: "Drive a range aggregation tree from the command line",
		Long: `segtree maintains a min/max range tree over a fixed number of slots and
executes the line-oriented command protocol against it, interactively or
from script files. Commands are '<code> <start> <end> <arg>' with codes
s (set), a (add), m (min) and M (max).`,
		RunE: runREPL,
	}

	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Run the interactive command loop",
		RunE:  runREPL,
	}

	runCmd = &cobra.Command{
		Use:   "run FILE",
		Short: "Replay a command script against a fresh tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	dotCmd = &cobra.Command{
		Use:   "dot [FILE]",
		Short: "Replay a script and emit the resulting tree as a DOT graph",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDot,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&treeSize, "size", "n", repl.DefaultSize, "number of tree slots")
	dotCmd.Flags().StringVarP(&dotOut, "output", "o", "", "write the DOT graph to this file instead of stdout")
	rootCmd.AddCommand(replCmd, runCmd, dotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSession() (*repl.Session, error) {
	session, err := repl.NewSession(treeSize)
	if err != nil {
		return nil, fmt.Errorf("create session with %d slots: %w", treeSize, err)
	}
	return session, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return repl.NewREPL(session, nil).Run(os.Stdin, os.Stdout)
}

func runScript(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	answers, err := scriptfile.Replay(args[0], session)
	for _, answer := range answers {
		fmt.Println(answer)
	}
	if err != nil {
		return fmt.Errorf("replay %s: %w", args[0], err)
	}
	return nil
}

func runDot(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if _, err := scriptfile.Replay(args[0], session); err != nil {
			return fmt.Errorf("replay %s: %w", args[0], err)
		}
	}
	out := os.Stdout
	if dotOut != "" {
		f, err := os.Create(dotOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", dotOut, err)
		}
		defer f.Close()
		out = f
	}
	segtree.Tree2Dot(session.Tree(), out)
	return nil
}
