package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/notiz/internal/app"
	"github.com/abhisek/notiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "notiz",
	Short: "Quiz yourself on your own notes",
	Long: "Notiz — terminal study tool that splits your notes into chunks, derives\n" +
		"questions from them and runs an adaptive-difficulty quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("notes", "", "Path to the text file with your notes or textbook content")
	rootCmd.PersistentFlags().String("topic", "", "Only use chunks containing this keyword (case-insensitive)")
	rootCmd.PersistentFlags().Int("num-questions", 5, "Number of questions to ask")
	rootCmd.PersistentFlags().Int("min-chunk-length", 50, "Minimum chunk length in characters")
	rootCmd.PersistentFlags().Int("max-chunk-length", 300, "Maximum chunk length in characters")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle seed for reproducible sessions (0 = random)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(chunksCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the shared flags and the notes file into a quiz config.
func loadConfig(cmd *cobra.Command) (quiz.Config, error) {
	cfg := quiz.DefaultConfig()

	notesPath, _ := cmd.Flags().GetString("notes")
	if notesPath == "" {
		return quiz.Config{}, fmt.Errorf("--notes is required")
	}
	data, err := os.ReadFile(notesPath)
	if err != nil {
		return quiz.Config{}, fmt.Errorf("read notes: %w", err)
	}
	cfg.NotesText = string(data)

	cfg.Topic, _ = cmd.Flags().GetString("topic")
	cfg.NumQuestions, _ = cmd.Flags().GetInt("num-questions")
	cfg.MinChunkLength, _ = cmd.Flags().GetInt("min-chunk-length")
	cfg.MaxChunkLength, _ = cmd.Flags().GetInt("max-chunk-length")
	cfg.Seed, _ = cmd.Flags().GetUint64("seed")

	return cfg, nil
}
