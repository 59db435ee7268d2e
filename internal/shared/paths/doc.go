// Package paths provides standardized output paths.
//
// # Layout
//
//	target/
//	  └── result.txt   (TEXT_FILE output channel)
//
// # Usage
//
//	import "github.com/GriffinCanCode/dataprocessor/internal/shared/paths"
//
//	if err := paths.ValidateResultPath(cfg.Output.ResultPath); err != nil {
//	    return err
//	}
//	dir := paths.ResultDir(paths.DefaultResultFile) // "target"
package paths
