// Package llm wraps an OpenAI-compatible chat completion API behind a small
// client that requests JSON-only replies and decodes them tolerantly.
//
// DecodeLLMJSON handles the formatting quirks models produce in practice:
// surrounding prose, markdown code fences, and leading chatter before the
// JSON object. Every request is one-shot; callers treat any failure as a
// terminal outcome for the document being classified.
package llm
