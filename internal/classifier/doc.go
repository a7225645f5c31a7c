// Package classifier turns extracted document text into a category and a
// descriptive filename using an LLM. The model's JSON reply is cleaned
// before it ever reaches the filesystem layer.
package classifier
