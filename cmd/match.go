package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ctgdx/internal/answers"
	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/matcher"
	"github.com/abhisek/ctgdx/internal/report"
)

type matchFlags struct {
	answers []string
	file    string
	format  string
	explain bool
}

func newMatchCmd() *cobra.Command {
	var flags matchFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a set of answers without the interactive UI",
		Example: "  ctgdx match -a q1=higher -a q2=reduced -a q3=no -a q4=no -a q5=no\n" +
			"  ctgdx match --file answers.json --format json\n" +
			"  echo '{\"q1\":\"yes\",...}' | ctgdx match --file -",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&flags.answers, "answer", "a", nil, "Answer as question=code (repeatable)")
	f.StringVarP(&flags.file, "file", "f", "", "Read a JSON answer document from this file (- for stdin)")
	f.StringVar(&flags.format, "format", "text", "Output format: text or json")
	f.BoolVar(&flags.explain, "explain", false, "Also print every eligible scenario with its score")
	cmd.MarkFlagsMutuallyExclusive("answer", "file")
	cmd.MarkFlagsOneRequired("answer", "file")
	return cmd
}

func runMatch(cmd *cobra.Command, flags matchFlags) error {
	switch flags.format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", flags.format)
	}
	if flags.explain && flags.format != "text" {
		return errors.New("--explain is only available with --format text")
	}

	cat, closeLog, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	ans, err := readAnswers(cmd, cat, flags)
	if err != nil {
		return err
	}

	m := matcher.ForCatalog(cat)
	res, err := m.Match(ans)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		return report.WriteJSON(out, cat, res)
	}
	if err := report.WriteText(out, cat, res); err != nil {
		return err
	}
	if !flags.explain {
		return nil
	}
	ranked, err := m.Rank(ans)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return report.WriteRanking(out, ranked, cat.Total())
}

func readAnswers(cmd *cobra.Command, cat *catalog.Catalog, flags matchFlags) (catalog.Answers, error) {
	if flags.file == "" {
		return answers.ParsePairs(cat, flags.answers)
	}

	var r io.Reader
	if flags.file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(flags.file)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}
	return answers.Decode(cat, r)
}
