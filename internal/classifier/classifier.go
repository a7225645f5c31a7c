package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"docsort/internal/logging"
	"docsort/internal/services/llm"
	"docsort/internal/textutil"
)

const maxCategoryRunes = 50

// Suggestion is the cleaned classification result: a category folder name
// safe to create on disk and a sanitized filename stem without extension.
type Suggestion struct {
	Category string
	Filename string
}

// completer is the slice of the LLM client the classifier needs.
type completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// LLMClassifier asks a chat-completions model to categorize documents.
type LLMClassifier struct {
	client completer
	logger *slog.Logger
}

func New(client *llm.Client, logger *slog.Logger) *LLMClassifier {
	return &LLMClassifier{client: client, logger: logging.NewComponentLogger(logger, "classifier")}
}

type suggestionPayload struct {
	Category    string `json:"category"`
	NewFilename string `json:"new_filename"`
}

// Classify requests a category and filename for the given document text.
// Blank text is refused before any network call is made; there is nothing
// for the model to work with.
func (c *LLMClassifier) Classify(ctx context.Context, originalName, text string) (Suggestion, error) {
	if strings.TrimSpace(text) == "" {
		return Suggestion{}, fmt.Errorf("no text to classify for %s", originalName)
	}

	content, err := c.client.CompleteJSON(ctx, systemPrompt, buildPrompt(originalName, text))
	if err != nil {
		return Suggestion{}, fmt.Errorf("classification request failed: %w", err)
	}

	var payload suggestionPayload
	if err := llm.DecodeLLMJSON(content, &payload); err != nil {
		return Suggestion{}, fmt.Errorf("invalid classification response: %w", err)
	}
	if strings.TrimSpace(payload.Category) == "" || strings.TrimSpace(payload.NewFilename) == "" {
		return Suggestion{}, fmt.Errorf("classification response missing category or filename for %s", originalName)
	}

	suggestion := Suggestion{
		Category: cleanCategory(payload.Category),
		Filename: textutil.SanitizeFileStem(payload.NewFilename),
	}
	c.logger.Debug("classified document",
		logging.String("file", originalName),
		logging.String("category", suggestion.Category),
		logging.String("filename", suggestion.Filename),
	)
	return suggestion, nil
}

// cleanCategory trims and caps the model's category before the folder
// sanitizer sees it. Path separators are neutralized here so a category
// like "Finance/2024" cannot fan out into nested directories.
func cleanCategory(category string) string {
	category = strings.TrimSpace(category)
	category = strings.ReplaceAll(category, "/", "_")
	category = strings.ReplaceAll(category, "\\", "_")
	runes := []rune(category)
	if len(runes) > maxCategoryRunes {
		category = strings.TrimSpace(string(runes[:maxCategoryRunes]))
	}
	return category
}
