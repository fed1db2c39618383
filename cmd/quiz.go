package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/notiz/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a plain line-mode quiz on stdin/stdout (no TUI)",
	Long: `Run the quiz as a plain question/answer loop over the terminal.

Useful over dumb terminals and in scripts; the TUI (bare "notiz") is the
nicer way to study interactively.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Bool("quiet", false, "Suppress prompts and the summary; answers are still graded")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Quiet, _ = cmd.Flags().GetBool("quiet")

	runner := &quiz.Runner{
		Session: quiz.NewSession(cfg),
		Input:   &scannerReader{scanner: bufio.NewScanner(os.Stdin)},
		Output:  quiz.EmitterFunc(func(line string) { fmt.Println(line) }),
		Quiet:   cfg.Quiet,
	}
	runner.Run(cfg.NumQuestions)
	return nil
}

// scannerReader adapts a bufio.Scanner to the quiz.LineReader interface.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (r *scannerReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
