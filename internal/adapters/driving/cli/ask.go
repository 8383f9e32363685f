package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driving"
)

var (
	askHybrid bool
	askTopK   int
	askJSON   bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question over the ingested documents",
	Long: `Answers a question using the most relevant chunks from the indexed
documents. By default the model is restricted to the document context and
refuses when the answer is not in it. With --hybrid the model may fall
back to its general knowledge, disclosing when it does.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askHybrid, "hybrid", false, "allow disclosed fallback to general knowledge")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "n", 0, "number of chunks to retrieve (default 3)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	// Flags win; the config file supplies defaults when they are unset.
	topK := askTopK
	hybrid := askHybrid
	if configStore != nil {
		if topK <= 0 {
			topK = configStore.GetInt(driven.ConfigKeyTopK)
		}
		if !cmd.Flags().Changed("hybrid") {
			hybrid = configStore.GetBool(driven.ConfigKeyHybrid)
		}
	}

	answer, err := answerService.Answer(cmd.Context(), args[0], driving.AnswerOptions{
		TopK:   topK,
		Hybrid: hybrid,
	})
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	cmd.Println(answer.Text)
	names := answer.SourceNames()
	if len(names) == 0 {
		cmd.Println()
		cmd.Println("(no local documents used)")
		return nil
	}
	cmd.Println()
	cmd.Println("Sources:")
	for _, name := range names {
		cmd.Printf("  - %s\n", name)
	}
	return nil
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	payload := struct {
		Answer  string   `json:"answer"`
		Sources []string `json:"sources"`
	}{
		Answer:  answer.Text,
		Sources: answer.SourceNames(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
