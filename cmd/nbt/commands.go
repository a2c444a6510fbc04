package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	nbt "github.com/starfederation/nbt-go"
)

type dumpCmd struct {
	Path     string `arg:"" type:"existingfile" help:"NBT file, optionally gzip or zlib compressed."`
	Network  bool   `help:"Input is an anonymous (network) root without a name."`
	MaxDepth int    `help:"Maximum compound/list nesting." default:"512"`
}

func (c *dumpCmd) Run(logger *zap.Logger) error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()
	logger.Debug("opened input", zap.String("path", c.Path), zap.String("compression", in.Compression))

	root, err := readRoot(nbt.NewReaderSource(in), c.Network, nbt.Options{MaxDepth: c.MaxDepth})
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Path, err)
	}
	out, err := nbt.NamedToJSON(root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

type buildCmd struct {
	Path        string `arg:"" type:"existingfile" help:"Typed JSON file as printed by dump."`
	Output      string `short:"o" required:"" help:"Destination NBT file."`
	Network     bool   `help:"Write an anonymous (network) root, dropping the name."`
	Compression string `help:"Output compression." enum:"none,gzip,zlib" default:"none"`
}

func (c *buildCmd) Run(logger *zap.Logger) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	root, err := nbt.NamedFromJSON(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.Path, err)
	}

	fh, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer fh.Close()
	bw := bufio.NewWriter(fh)
	w, zc, err := wrapOutput(bw, c.Compression)
	if err != nil {
		return err
	}
	sink := nbt.NewWriterSink(w)
	if c.Network {
		err = nbt.WriteNetwork(sink, root.ToNetwork())
	} else {
		err = nbt.WriteNamed(sink, root)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Output, err)
	}
	if err := zc.Close(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	logger.Info("wrote nbt", zap.String("path", c.Output), zap.String("compression", c.Compression))
	return fh.Close()
}

type benchCmd struct {
	Path    string `arg:"" type:"existingfile" help:"NBT file, optionally gzip or zlib compressed."`
	Network bool   `help:"Input is an anonymous (network) root without a name."`
	Cycles  int    `short:"n" help:"Number of decode cycles." default:"1000"`
}

func (c *benchCmd) Run(logger *zap.Logger) error {
	if c.Cycles <= 0 {
		return fmt.Errorf("cycles must be positive")
	}
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	in.Close()
	if err != nil {
		return err
	}

	var total, fastest, slowest time.Duration
	for i := 0; i < c.Cycles; i++ {
		start := time.Now()
		if _, err := readRoot(nbt.NewSliceSource(data), c.Network, nbt.Options{}); err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}
		d := time.Since(start)
		total += d
		if i == 0 || d < fastest {
			fastest = d
		}
		if d > slowest {
			slowest = d
		}
	}
	logger.Info("decode timings",
		zap.String("path", c.Path),
		zap.Int("bytes", len(data)),
		zap.Int("cycles", c.Cycles),
		zap.Duration("min", fastest),
		zap.Duration("avg", total/time.Duration(c.Cycles)),
		zap.Duration("max", slowest),
	)
	return nil
}

func readRoot(src nbt.Source, network bool, opts nbt.Options) (nbt.Named, error) {
	if network {
		n, err := nbt.ReadNetwork(src, opts)
		if err != nil {
			return nbt.Named{}, err
		}
		return n.ToNamed(""), nil
	}
	return nbt.ReadNamed(src, opts)
}
