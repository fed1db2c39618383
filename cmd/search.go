package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/notiz/internal/chunker"
	"github.com/abhisek/notiz/internal/vectorstore"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find the chunks most similar to a query (TF-IDF)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Int("top", 3, "Number of results to show")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topK, _ := cmd.Flags().GetInt("top")
	query := strings.Join(args, " ")

	chunks := chunker.Split(cfg.NotesText, cfg.MinChunkLength, cfg.MaxChunkLength)
	if len(chunks) == 0 {
		return fmt.Errorf("no chunks to search — the notes file is empty")
	}

	matches := vectorstore.New(chunks).Search(query, topK)
	if len(matches) == 0 {
		fmt.Printf("No chunks match %q.\n", query)
		return nil
	}

	for _, m := range matches {
		fmt.Printf("── Chunk %d (score %.3f) ──\n", m.Index+1, m.Score)
		fmt.Println(m.Chunk)
		fmt.Println()
	}
	return nil
}
