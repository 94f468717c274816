// Package notify provides utilities for sending formatted notifications to CLI users.
//
// [WriteMessage] displays a message with a type-specific symbol and color. Message types
// include success (✔), error (✗), warning (⚠), info (ℹ), prompt (?) and title messages
// with customizable emojis. Prompt messages are written without a trailing newline so the
// user's answer follows on the same line.
package notify
