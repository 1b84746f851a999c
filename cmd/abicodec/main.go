// Command abicodec is a small CLI front end over the abi and rlp packages:
// selector computation from a human-readable function signature, and RLP
// item inspection, adapted from the source's code-generation entrypoint
// (cmd/main.go) now that there is no generated code to format.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethwire/abicore/abi"
	"github.com/ethwire/abicore/rlp"
)

func keccak(data []byte) [32]byte {
	return crypto.Keccak256Hash(data)
}

func main() {
	var (
		mode   = flag.String("mode", "selector", "selector | rlp-inspect")
		sig    = flag.String("sig", "", "human-readable function signature, e.g. \"function sam(bytes,bool,uint256[])\"")
		input  = flag.String("input", "", "hex-encoded input (0x-prefixed or bare)")
		strict = flag.Bool("strict", true, "reject non-canonical RLP encodings")
	)
	flag.Parse()

	switch *mode {
	case "selector":
		runSelector(*sig)
	case "rlp-inspect":
		runRLPInspect(*input, *strict)
	default:
		log.Fatalf("unknown -mode %q (want selector or rlp-inspect)", *mode)
	}
}

func runSelector(sig string) {
	if sig == "" {
		log.Fatal("-sig is required for -mode selector")
	}
	fn, err := abi.ParseHumanReadableFunction(sig, keccak)
	if err != nil {
		log.Fatalf("failed to parse signature: %v", err)
	}
	sel := fn.Selector()
	fmt.Printf("%s => 0x%s\n", fn.Signature(), hex.EncodeToString(sel[:]))
}

func runRLPInspect(input string, strict bool) {
	if input == "" {
		log.Fatal("-input is required for -mode rlp-inspect")
	}
	data, err := hex.DecodeString(strings.TrimPrefix(input, "0x"))
	if err != nil {
		log.Fatalf("failed to decode -input as hex: %v", err)
	}
	item, consumed, err := rlp.Wrap(data, strict)
	if err != nil {
		log.Fatalf("failed to parse RLP item: %v", err)
	}
	if consumed != len(data) {
		fmt.Fprintf(os.Stderr, "warning: %d trailing byte(s) after the top-level item\n", len(data)-consumed)
	}
	describe(item, 0, strict)
}

func describe(item rlp.Item, depth int, strict bool) {
	indent := strings.Repeat("  ", depth)
	if !item.IsList() {
		fmt.Printf("%sstring(%d): 0x%s\n", indent, item.Len(), hex.EncodeToString(item.Bytes()))
		return
	}
	fmt.Printf("%slist(%d bytes):\n", indent, item.Len())
	children, err := item.Elements(strict)
	if err != nil {
		log.Fatalf("failed to walk list elements: %v", err)
	}
	for _, c := range children {
		describe(c, depth+1, strict)
	}
}
