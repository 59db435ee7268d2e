// Package main is the entry point for the dataproc command.
//
// dataproc computes one summary statistic over a sequence of integers and
// prints or stores "Result = <value>".
//
// Usage:
//
//	# Median of the non-negative values, printed to stdout
//	dataproc -c REMOVE_NEGATIVES -a MEDIAN -- -5 1 3 -2 7
//
//	# P90 of a JSON file, written to target/result.txt
//	dataproc -a P90_NEAREST_RANK -o TEXT_FILE -i values.json
//
//	# Values from stdin
//	seq 1 10 | dataproc -a STD_DEV -i -
//
// Configuration:
//   - Environment variables (DATAPROC_*, LOG_LEVEL, LOG_DEV)
//   - CLI flags (override env vars)
//
// Negative values given as arguments must follow "--" so they are not read as flags.
package main
