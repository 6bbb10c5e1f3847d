package config

import (
	"path/filepath"
	"runtime"
)

import (
	"github.com/WPettersson/sortcensus/tri"
)

type Config struct {
	Input       string
	Output      string
	Level       int
	Parallelism int
	Tri         tri.Library
}

// Workers sizes the pool: the historical default is 3, -1 means one
// worker per CPU.
func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 3
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) InputFile(name string) string {
	return filepath.Join(c.Input, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}
