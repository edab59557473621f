// Command peachminer drives the Trigg/Peach proof-of-work core:
// `mine` searches for a solving nonce against a block trailer, `verify`
// checks a completed trailer's nonce. Adapted from the flag-parsing and
// subcommand-dispatch style of poai/cmd/poaid/{main.go,cli.go}, with the
// teacher's key/address/transaction subcommands (send, balance,
// generate-key) dropped entirely.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "mine":
		runMine(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "help", "-h", "--help":
		printHelp()
	default:
		fmt.Fprintf(os.Stderr, "peachminer: unknown subcommand %q\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("peachminer - Trigg/Peach proof-of-work core")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  peachminer mine   [flags]   - search for a solving nonce")
	fmt.Println("  peachminer verify [flags]   - verify a solved trailer")
	fmt.Println("  peachminer help             - show this help")
	fmt.Println()
	fmt.Println("Mine flags:")
	fmt.Println("  --trailer=<path>     - 160-byte block trailer file (default: synthetic)")
	fmt.Println("  --difficulty=<n>     - difficulty byte of the synthetic trailer")
	fmt.Println("  --workers=<n>        - number of concurrent workers")
	fmt.Println("  --data-dir=<path>    - ledger data directory")
	fmt.Println("  --ledger             - append solved nonces to the ledger")
	fmt.Println()
	fmt.Println("Verify flags:")
	fmt.Println("  --trailer=<path>     - 160-byte block trailer file")
}

func fatalUsage(fs *flag.FlagSet, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	fs.Usage()
	os.Exit(1)
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
