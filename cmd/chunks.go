package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/notiz/internal/chunker"
	"github.com/abhisek/notiz/internal/quiz"
)

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "Print the chunk breakdown of the notes",
	Long: `Show how the notes split into chunks, with the length, word count and
difficulty level each chunk would contribute to a quiz.`,
	RunE: runChunks,
}

func runChunks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chunks := chunker.Split(cfg.NotesText, cfg.MinChunkLength, cfg.MaxChunkLength)
	if len(chunks) == 0 {
		fmt.Println("No chunks — the notes file is empty or all whitespace.")
		return nil
	}

	for i, chunk := range chunks {
		level := "unusable"
		if q, ok := quiz.FromChunk(chunk); ok {
			level = q.Level.String()
		}
		fmt.Printf("── Chunk %d/%d — %d chars, %d words, %s ──\n",
			i+1, len(chunks), len(chunk), len(strings.Fields(chunk)), level)
		fmt.Println(chunk)
		fmt.Println()
	}
	return nil
}
