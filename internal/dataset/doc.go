// Package dataset decodes the integer sequence handed to the processor.
//
// Supported formats:
//   - text: integers separated by whitespace and/or commas
//   - json: a top-level array (bytedance/sonic)
//   - yaml: a top-level sequence (goccy/go-yaml)
//   - toml: a document with a "values" array (pelletier/go-toml/v2)
//
// Blank input decodes to an empty sequence in every format. Values that are
// not integers fail with ErrMalformed.
package dataset
