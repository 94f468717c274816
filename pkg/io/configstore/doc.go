// Package configstore persists the configured registry in a JSON record in the working directory.
//
// The record has the shape {"registry": "<url>"} and lives in [FileName]. Reads never fail:
// a missing record is treated as absent, and a malformed record produces a warning and is
// treated as absent. Writes replace the record atomically through a temporary file and rename,
// so concurrent readers never observe a partially written record.
package configstore
