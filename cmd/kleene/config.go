// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/go-kleene/kleene/gen"
	"github.com/go-kleene/kleene/inter"
)

var (
	cfgPath   string
	showStats bool
	verbose   bool
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfgPath, "config", "", "yaml file with solver limits")
	fs.BoolVar(&showStats, "stats", false, "print search statistics after solving")
	fs.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// config is the yaml solver configuration:
//
//	max_nodes: 100000
//	max_depth: 64
//	seed: 33
type config struct {
	MaxNodes int64 `yaml:"max_nodes"`
	MaxDepth int64 `yaml:"max_depth"`
	Seed     int64 `yaml:"seed"`
}

func loadConfig() (config, error) {
	var c config
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfgPath == "" {
		return c, nil
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", cfgPath)
	}
	if c.Seed != 0 {
		gen.Seed(c.Seed)
	}
	log.WithFields(logrus.Fields{
		"max_nodes": c.MaxNodes,
		"max_depth": c.MaxDepth,
	}).Debug("loaded config")
	return c, nil
}

func (c config) limits() inter.Limits {
	return inter.Limits{MaxNodes: c.MaxNodes, MaxDepth: c.MaxDepth}
}

// stackCloser reads from Reader and closes the whole stack under it,
// decompressor first, file last.
type stackCloser struct {
	io.Reader
	stack []io.Closer
}

func (s *stackCloser) Close() error {
	var first error
	for _, c := range s.stack {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// pathReader opens p for reading, transparently decompressing .gz and
// .bz2 files.  "-" means stdin.  Closing the returned reader closes the
// underlying file as well.
func pathReader(p string) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(p, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stackCloser{Reader: zr, stack: []io.Closer{zr, f}}, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return &stackCloser{Reader: bzip2.NewReader(f), stack: []io.Closer{f}}, nil
	}
	return f, nil
}

func printStats(st inter.Stats) {
	if !showStats {
		return
	}
	fmt.Printf("c nodes %d backtracks %d props %d transitions %d\n",
		st.Nodes, st.Backtracks, st.Props, st.Transitions)
}
