package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jaqx0r/boolmin"
	"github.com/spf13/cobra"
)

// maxInputLength mirrors the original implementation's fixed-size
// char input[MAXIMUM_INPUT_LENGTH + 1] stdin buffer.
const maxInputLength = 1023

func newRootCommand() *cobra.Command {
	var (
		exprFlag string
		verbose  bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "boolmin [expression]",
		Short: "Minimize a boolean expression into sum-of-products form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(cmd, args, exprFlag)
			if err != nil {
				return err
			}

			logger := boolmin.Logger(boolmin.NopLogger{})
			if verbose {
				logger = boolmin.StderrLogger{Writer: cmd.ErrOrStderr()}
			}

			run(cmd.OutOrStdout(), input, logger, quiet)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "boolean expression to minimize (otherwise read one line from stdin)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print parser diagnostics to stderr")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the minimized expression")

	return cmd
}

func resolveInput(cmd *cobra.Command, args []string, exprFlag string) (string, error) {
	if exprFlag != "" {
		return exprFlag, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return readLine(cmd.InOrStdin())
}

// readLine reads a single line from r, bounded to maxInputLength bytes
// (not counting the terminator), with the trailing newline stripped.
func readLine(r io.Reader) (string, error) {
	reader := bufio.NewReaderSize(r, maxInputLength+1)
	var b strings.Builder
	for b.Len() < maxInputLength {
		c, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("reading input: %w", err)
		}
		if c == '\n' {
			break
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func run(w io.Writer, input string, logger boolmin.Logger, quiet bool) {
	expr := boolmin.ParseWithLogger(input, logger)

	if !quiet {
		fmt.Fprintln(w, expr.String())
	}

	minterms := boolmin.MintermsFromExpression(expr)
	primes := boolmin.PrimeImplicants(minterms)
	cover := boolmin.SelectCover(primes, minterms)
	minimized := boolmin.ExpressionFromImplicants(cover, minterms.Variables)

	if quiet {
		fmt.Fprintln(w, minimized.String())
		return
	}

	fmt.Fprintf(w, "f(%s) = Σm(%s) = %s\n",
		joinBytes(minterms.Variables, ", "),
		joinUint64(minterms.Indices, ", "),
		minimized.String(),
	)
}

func joinBytes(bs []byte, sep string) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = string(b)
	}
	return strings.Join(parts, sep)
}

func joinUint64(vs []uint64, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
