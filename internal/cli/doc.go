// Package cli provides command-line argument parsing for rteqc-deploy.
//
// This package converts the invocation tokens into a structured Args type:
// which lifecycle actions were requested (build, clean, run, status) and
// which configuration overrides accompany them. Value-flags consume the
// following token; a value-flag at the end of input is a usage error, as is
// any unknown flag or an invocation with no tokens at all.
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if err != nil {
//	    if errors.Is(err, cli.ErrHelp) {
//	        printUsage()
//	        os.Exit(0)
//	    }
//	    // usage error: print usage, exit 1
//	}
package cli
