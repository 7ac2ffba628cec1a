// huffzip compresses and decompresses files with a static Huffman code.
//
// Usage:
//
//	huffzip [-v] compress <input> <output>
//	huffzip [-v] decompress <input> <output>
//	huffzip stats <input> [<input> ...]
//
// Use '-' as a filename to read from stdin or write to stdout.
//
// Options:
//
//	-v, --verbose   Print sizes after each compress or decompress
//	-h, --help      Print help message
//	    --version   Print version information
//
// The exit status is 0 on success, 1 on a usage error, and 2 when a file
// cannot be read, written, or decoded.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffzip"
)

const version = "1.0.0"

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

type options struct {
	verbose  bool
	showHelp bool
	showVer  bool
}

type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

func run(args []string, e env) int {
	var opts options
	fs := flag.NewFlagSet("huffzip", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.BoolVar(&opts.verbose, "v", false, "verbose mode")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose mode")
	fs.BoolVar(&opts.showHelp, "h", false, "print help message")
	fs.BoolVar(&opts.showHelp, "help", false, "print help message")
	fs.BoolVar(&opts.showVer, "version", false, "print version information")
	fs.Usage = func() { usage(e.stderr) }

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if opts.showHelp {
		usage(e.stdout)
		return exitOK
	}

	if opts.showVer {
		fmt.Fprintf(e.stdout, "huffzip %s\n", version)
		return exitOK
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage(e.stderr)
		return exitUsage
	}

	switch cmd, paths := rest[0], rest[1:]; cmd {
	case "compress", "decompress":
		if len(paths) != 2 {
			usage(e.stderr)
			return exitUsage
		}
		fn := huffzip.Compress
		if cmd == "decompress" {
			fn = huffzip.Decompress
		}
		if err := convert(e, opts, cmd, paths[0], paths[1], fn); err != nil {
			fmt.Fprintf(e.stderr, "ERROR '%s': %v\n", paths[0], err)
			return exitFailure
		}
		return exitOK

	case "stats":
		if len(paths) == 0 {
			usage(e.stderr)
			return exitUsage
		}
		status := exitOK
		for i, path := range paths {
			if i > 0 {
				fmt.Fprintln(e.stdout)
			}
			if err := printStats(e, path); err != nil {
				fmt.Fprintf(e.stderr, "ERROR '%s': %v\n", path, err)
				status = exitFailure
			}
		}
		return status

	default:
		fmt.Fprintf(e.stderr, "unknown command %q\n\n", cmd)
		usage(e.stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: huffzip [-v] compress <input> <output>\n")
	fmt.Fprintf(w, "       huffzip [-v] decompress <input> <output>\n")
	fmt.Fprintf(w, "       huffzip stats <input> [<input> ...]\n\n")
	fmt.Fprintf(w, "Compress and decompress files with a static Huffman code.\n\n")
	fmt.Fprintf(w, "Use '-' as filename to read from stdin or write to stdout.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "  -v, --verbose   print sizes after each command\n")
	fmt.Fprintf(w, "  -h, --help      print this message\n")
	fmt.Fprintf(w, "      --version   print version information\n")
}

// convert runs fn over the whole input and only then creates the output, so
// that a failed run never leaves a partial file behind.
func convert(e env, opts options, cmd, inPath, outPath string, fn func([]byte) ([]byte, error)) error {
	in, err := readInput(e, inPath)
	if err != nil {
		return err
	}

	out, err := fn(in)
	if err != nil {
		return err
	}

	if err := writeOutput(e, outPath, out); err != nil {
		return err
	}

	if opts.verbose {
		fmt.Fprintf(e.stderr, "%s: %s %d bytes -> %s %d bytes\n", cmd, displayName(inPath), len(in), displayName(outPath), len(out))
	}
	return nil
}

func readInput(e env, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return nil, &huffzip.IOError{Op: "read stdin", Err: err}
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &huffzip.IOError{Op: "read", Err: err}
	}
	return data, nil
}

func writeOutput(e env, path string, data []byte) error {
	if path == "-" {
		if _, err := e.stdout.Write(data); err != nil {
			return &huffzip.IOError{Op: "write stdout", Err: err}
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &huffzip.IOError{Op: "write", Err: err}
	}
	return nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdio>"
	}
	return path
}
