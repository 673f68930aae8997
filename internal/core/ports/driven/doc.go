// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - PromptStore: Verdict prompt templates
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Language model generation. Without it, verdicts are rule-based.
//   - SlangDictionary: Custom slang. Without it, only built-in slang applies.
//   - AnswerLoader: Answer files for the CLI.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
