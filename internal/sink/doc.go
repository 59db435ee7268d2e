// Package sink provides the output channels of the data processor.
//
// A Sink receives the fully formatted result text. Two channels exist:
//   - Console: writes the text plus a trailing newline to standard output
//   - TextFile: creates missing parent directories, then replaces the file
//     contents with the text (no trailing newline)
//
// A Registry maps each output policy to its Sink so the processor can be
// exercised without touching the console or the filesystem.
//
// Example Usage:
//
//	reg := sink.NewRegistry(paths.DefaultResultFile)
//	reg.Register(types.OutputConsole, sink.Console{Out: &buf})
//	s, err := reg.Lookup(types.OutputTextFile)
package sink
