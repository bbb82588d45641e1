package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to an encoded protobuf message")
		hexInput    = flag.String("hex", "", "Inline hex-encoded message (alternative to -in)")
		maxDepth    = flag.Int("depth", 32, "Maximum nesting depth to descend")
		verbose     = flag.Bool("v", false, "Verbose decode logging")
		noColor     = flag.Bool("no-color", false, "Disable styled output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *inFile == "" && *hexInput == "" {
		fmt.Fprintln(os.Stderr, "Usage: pbdump -in <message.bin> [-depth n] [-v]")
		fmt.Fprintln(os.Stderr, "       pbdump -hex 089601")
		fmt.Fprintln(os.Stderr, "       pbdump -in <message.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	data, err := readInput(*inFile, *hexInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("input loaded", zap.Int("bytes", len(data)))

	if *interactive {
		if err := runInteractive(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	d := &dumper{
		out:      os.Stdout,
		styled:   !*noColor && term.IsTerminal(int(os.Stdout.Fd())),
		maxDepth: *maxDepth,
		log:      logger,
	}
	if err := d.dump(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(path, hexInput string) ([]byte, error) {
	if hexInput != "" {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, hexInput)
		data, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("decode hex: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
