// Command ghostls is the Ghost language server (spec §1, §6 "CLI").
package main

import (
	"fmt"
	"os"

	"ghostls/internal/ffi"
	"ghostls/internal/log"
	"ghostls/internal/rpc"
	"ghostls/internal/server"
	"ghostls/internal/version"
)

const usage = `ghostls - Language Server Protocol implementation for Ghost

Usage:
  ghostls [flags]

Flags:
  -h, --help            show this help message
  -v, --version         print the version and exit
      --log-level=LEVEL set log verbosity: debug, info, warn, error, silent (default info)

ghostls speaks LSP 3.17 over stdio, framed with Content-Length headers.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logLevel := "info"

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			fmt.Fprint(os.Stdout, usage)
			return 0
		case arg == "-v" || arg == "--version":
			fmt.Fprintln(os.Stdout, version.GetFullVersion())
			return 0
		case len(arg) > len("--log-level=") && arg[:len("--log-level=")] == "--log-level=":
			logLevel = arg[len("--log-level="):]
		default:
			fmt.Fprintf(os.Stderr, "ghostls: unknown flag %q\n\n%s", arg, usage)
			return 1
		}
	}

	log.SetLevel(log.ParseLevel(logLevel))

	store, err := ffi.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghostls: loading FFI catalog: %v\n", err)
		return 1
	}

	transport := rpc.NewTransport(os.Stdin, os.Stdout)
	srv := server.New(transport, store)

	code, err := srv.Run()
	if err != nil {
		log.Error("%v", err)
	}
	return code
}
