// Package docbot provides a documentation question-answering bot core.
// It resolves multi-step chat input into a fully-specified documentation
// question, crawls a bounded subgraph of the documentation site to build a
// text context, and forwards context plus question to a language-model
// completion service.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package docbot
