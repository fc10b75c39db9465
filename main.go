// Package main implements a static disassembler for 65C02 binary images
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/c02disasm/internal/cli"
	"github.com/retroenv/c02disasm/internal/config"
	"github.com/retroenv/c02disasm/internal/disasm"
	"github.com/retroenv/c02disasm/internal/loader"
	"github.com/retroenv/c02disasm/internal/options"
	"github.com/retroenv/c02disasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			if msg := usageErr.Error(); msg != "" {
				fmt.Printf("%s\n\n", msg)
			}
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing arguments failed", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	printBanner(opts)

	if err := disasmFile(logger, opts, disasmOptions); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(opts options.Program) {
	if opts.Quiet {
		return
	}
	fmt.Println("[---------------------------------------]")
	fmt.Println("[ c02disasm - 65C02 binary disassembler ]")
	fmt.Printf("[---------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func disasmFile(logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	img, err := loader.Load(opts.Parameters)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	logger.Debug("Loaded image",
		log.String("file", opts.Input),
		log.Int("size", len(img.Data)),
		log.String("base", fmt.Sprintf("$%04X", img.Base)))

	dis, err := disasm.New(logger, img.Data, img.Base, disasmOptions)
	if err != nil {
		return fmt.Errorf("initializing disassembler: %w", err)
	}

	result, err := dis.Process()
	if err != nil {
		return fmt.Errorf("processing image: %w", err)
	}
	if pathErrors := dis.PathErrors(); len(pathErrors) > 0 {
		logger.Warn("Disassembly is incomplete", log.Int("failedPaths", len(pathErrors)))
	}

	var output io.WriteCloser = os.Stdout
	if opts.Output != "" {
		output, err = os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", opts.Output, err)
		}
	}

	w := writer.New(dis.Memory(), dis.Vectors(), output, disasmOptions)
	if err := w.Write(result); err != nil {
		_ = output.Close()
		return fmt.Errorf("writing listing: %w", err)
	}
	if opts.Output == "" {
		return nil
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}

	logger.Info("Disassembly written",
		log.String("file", opts.Output),
		log.Int("instructions", len(result)))
	return nil
}
