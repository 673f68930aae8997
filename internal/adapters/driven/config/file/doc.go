// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.radar.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable verdict prompt templates
//   - SlangFile: TOML dictionary of custom slang
//   - SlangWatcher: reloads the slang dictionary when it changes
package file
