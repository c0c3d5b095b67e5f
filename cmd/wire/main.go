package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/binwire"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List built-in sample shapes and exit")
		sampleName  = flag.String("sample", "", "Sample shape to work with")
		decodeHex   = flag.String("decode", "", "Hex bytes to decode as the sample's shape")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		binwire.SetLogger(logger)
		defer func() { _ = logger.Sync() }()
	}

	if *list {
		listSamples()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *sampleName == "" {
		fmt.Fprintln(os.Stderr, "Usage: wire -sample <name>                encode the sample, show annotated hex")
		fmt.Fprintln(os.Stderr, "       wire -sample <name> -decode <hex>  decode hex as the sample's shape")
		fmt.Fprintln(os.Stderr, "       wire -list                         list sample shapes")
		fmt.Fprintln(os.Stderr, "       wire -i                            interactive mode")
		os.Exit(1)
	}

	s, ok := findSample(*sampleName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown sample %q (try -list)\n", *sampleName)
		os.Exit(1)
	}

	var err error
	if *decodeHex != "" {
		err = runDecode(s, *decodeHex)
	} else {
		err = runEncode(s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listSamples() {
	fmt.Println("Built-in sample shapes:")
	for _, s := range samples {
		fmt.Printf("  %-8s %s\n", s.name, s.about)
		for _, f := range s.fields {
			fmt.Printf("           %s: %s = %s\n", f.name, f.typ, f.val)
		}
	}
}

func runEncode(s sample) error {
	vals := s.defaults()
	data, spans, err := s.encode(vals)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", s.name, s.about)
	fmt.Println("  offset  bytes             field")
	for i, sp := range spans {
		fmt.Printf("  %6d  %-16s  %s = %s\n",
			sp.start, hex.EncodeToString(data[sp.start:sp.end]), s.fields[i].name, vals[i])
	}
	fmt.Printf("\n%d bytes total: %s\n", len(data), hex.EncodeToString(data))
	return nil
}

func runDecode(s sample, input string) error {
	data, err := hex.DecodeString(strings.Map(dropSpace, input))
	if err != nil {
		return fmt.Errorf("parse hex: %w", err)
	}

	vals, err := s.decode(data)
	if err != nil {
		return err
	}

	fmt.Printf("%s decoded from %d bytes:\n", s.name, len(data))
	for i, f := range s.fields {
		fmt.Printf("  %s = %s\n", f.name, vals[i])
	}

	// Re-encoding the decoded values shows trailing garbage and
	// non-minimal framing: canonical input always re-encodes to itself.
	reenc, _, err := s.encode(vals)
	if err != nil {
		return fmt.Errorf("re-encode: %w", err)
	}
	if !bytes.Equal(reenc, data) {
		fmt.Printf("\nnote: input is not the canonical encoding of this value\n")
		fmt.Printf("      canonical: %s\n", hex.EncodeToString(reenc))
	}
	return nil
}

func dropSpace(r rune) rune {
	if r == ' ' || r == '\t' || r == '\n' {
		return -1
	}
	return r
}
