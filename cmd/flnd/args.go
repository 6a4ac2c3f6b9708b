package main

import (
	"fmt"
	"io"
)

const programName = "flnd"

type options struct {
	input  string
	output string
}

func (o options) inPlace() bool {
	return o.input == o.output
}

type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	return "usage: " + e.reason
}

// parseArgs 解析不含程序名的参数列表：file [-o outfile]。
func parseArgs(args []string) (options, error) {
	switch len(args) {
	case 0:
		return options{}, &usageError{reason: "missing input file"}
	case 1:
		return options{input: args[0], output: args[0]}, nil
	case 2:
		return options{}, &usageError{reason: "incomplete arguments"}
	case 3:
		if args[1] != "-o" {
			return options{}, &usageError{reason: fmt.Sprintf("unknown option %q", args[1])}
		}
		return options{input: args[0], output: args[2]}, nil
	default:
		return options{}, &usageError{reason: "too many arguments"}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "FLips the eNDianness of a binary file in chunks of 16-bit words.\n\n")
	fmt.Fprintf(w, "Usage: %s file [-o outfile]\n", programName)
	fmt.Fprintf(w, "If `-o' is not specified, the source file will be overwritten.\n")
}
