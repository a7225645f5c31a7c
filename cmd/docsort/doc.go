// Command docsort classifies documents with an LLM and files them into
// category folders.
package main
