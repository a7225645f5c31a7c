package classifier

import (
	"fmt"
	"strings"
)

// maxPromptTextRunes caps how much document text is sent to the model.
// Anything past the cap adds cost without improving classification.
const maxPromptTextRunes = 2000

const systemPrompt = `You are a document classification assistant. You analyze document text and respond only with valid JSON.`

const promptTemplate = `Analyze the following document text and determine:
1. A category folder name for organizing this document (e.g. "Invoices", "Tax Documents", "Medical Records", "Receipts", "Contracts").
2. A descriptive filename for the document, without extension, using lowercase words separated by underscores. Include dates in YYYY-MM-DD form when the document contains one.

Original filename: %s

Document text:
%s

Respond with JSON in exactly this format:
{"category": "<category folder name>", "new_filename": "<descriptive_filename>"}`

func buildPrompt(originalName, text string) string {
	return fmt.Sprintf(promptTemplate, originalName, truncateText(text))
}

func truncateText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPromptTextRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxPromptTextRunes])) + "..."
}
