// Command moneycalc evaluates money operations from the command line.
//
//	moneycalc add 1.99 0.99 --currency USD
//	moneycalc div "23.10" 3
//	moneycalc sub -c EUR -- -1.20 1.01
//	moneycalc batch operations.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/centcount/money"
	"github.com/centcount/money/internal/calc"
	"github.com/centcount/money/internal/config"
	"github.com/centcount/money/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	os.Exit(execute(newRootCmd(cfg, logger, os.Stdout, os.Stderr)))
}

// execute runs the command, reports a failure on the command's error
// stream and returns the process exit status.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config, logger zerolog.Logger, stdout, stderr io.Writer) *cobra.Command {
	eval := calc.NewEvaluator(logger)
	curr := cfg.Currency.Code()

	root := &cobra.Command{
		Use:           "moneycalc",
		Short:         "Fixed-precision money calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&curr, "currency", "c", curr, "ISO 4217 currency of the amounts")

	binary := func(op, use, short string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := money.ParseCurr(curr)
				if err != nil {
					return err
				}
				o := calc.Operation{Op: op, Left: c.Code() + " " + args[0]}
				switch op {
				case calc.OpAdd, calc.OpSub:
					o.Right = c.Code() + " " + args[1]
				default:
					o.Factor = args[1]
				}
				m, err := eval.Eval(o)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
				return err
			},
		}
	}

	root.AddCommand(
		binary(calc.OpAdd, "add <amount> <amount>", "Add two amounts"),
		binary(calc.OpSub, "sub <amount> <amount>", "Subtract the second amount from the first"),
		binary(calc.OpMul, "mul <amount> <factor>", "Multiply an amount by a decimal factor"),
		binary(calc.OpDiv, "div <amount> <divisor>", "Divide an amount by a decimal divisor"),
		&cobra.Command{
			Use:   "batch <file>",
			Short: "Evaluate the operations listed in a YAML file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := calc.LoadBatch(args[0])
				if err != nil {
					return err
				}
				results, runErr := eval.Run(b)
				if err := calc.WriteResults(cmd.OutOrStdout(), results); err != nil {
					return err
				}
				return runErr
			},
		},
	)
	return root
}
