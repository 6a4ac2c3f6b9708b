// Command flnd flips the endianness of a binary file in chunks of 16-bit words.
//
// Usage:
//
//	flnd file [-o outfile]
//
// If -o is not given the source file is overwritten in place.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	deps := defaultDeps()
	os.Exit(exitCode(run(os.Args[1:], deps), deps))
}
