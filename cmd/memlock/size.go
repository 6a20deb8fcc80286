package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// byteSize is a flag value accepting sizes like "4096", "4KiB" or "1MB".
type byteSize uint64

var _ pflag.Value = (*byteSize)(nil)

func (s *byteSize) String() string { return humanize.IBytes(uint64(*s)) }

func (s *byteSize) Set(v string) error {
	n, err := humanize.ParseBytes(v)
	if err != nil {
		return err
	}
	*s = byteSize(n)
	return nil
}

func (s *byteSize) Type() string { return "size" }
