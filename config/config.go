// Package config loads odtdump settings from a YAML file.
//
// Example:
//
//	limits:
//	  max_members: 5000
//	  max_member_size: 64 MiB
//	  max_total_size: 512 MiB
//	max_depth: 2048
//	log:
//	  level: debug
//	  format: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/opendoc/archive"
	"github.com/tsawler/opendoc/markup"
)

// maxSize is the largest accepted size; readers count bytes in an int64.
const maxSize = math.MaxInt64

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded settings file. Sizes are human readable ("64 MiB").
type Config struct {
	Limits   Limits `yaml:"limits"`
	MaxDepth int    `yaml:"max_depth"`
	Log      Log    `yaml:"log"`
}

// Limits mirrors archive.Limits with sizes as strings.
type Limits struct {
	MaxMembers    int    `yaml:"max_members"`
	MaxMemberSize string `yaml:"max_member_size"`
	MaxTotalSize  string `yaml:"max_total_size"`
}

// Log selects the logger level and formatter.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	l := archive.DefaultLimits()
	return &Config{
		Limits: Limits{
			MaxMembers:    l.MaxMembers,
			MaxMemberSize: humanize.IBytes(l.MaxMemberSize),
			MaxTotalSize:  humanize.IBytes(l.MaxTotalSize),
		},
		MaxDepth: markup.DefaultMaxDepth,
		Log:      Log{Level: "warn", Format: "text"},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Keys absent from data keep their
// default value; unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document decodes to io.EOF
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.ArchiveLimits(); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, c.MaxDepth)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ArchiveLimits converts the size strings. Empty strings map to zero, which
// archive treats as its default.
func (c *Config) ArchiveLimits() (archive.Limits, error) {
	if c.Limits.MaxMembers < 0 {
		return archive.Limits{}, fmt.Errorf("%w: limits.max_members %d", ErrInvalid, c.Limits.MaxMembers)
	}
	member, err := parseSize("limits.max_member_size", c.Limits.MaxMemberSize)
	if err != nil {
		return archive.Limits{}, err
	}
	total, err := parseSize("limits.max_total_size", c.Limits.MaxTotalSize)
	if err != nil {
		return archive.Limits{}, err
	}
	return archive.Limits{
		MaxMembers:    c.Limits.MaxMembers,
		MaxMemberSize: member,
		MaxTotalSize:  total,
	}, nil
}

func parseSize(key, s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalid, key, s, err)
	}
	if n > maxSize {
		return 0, fmt.Errorf("%w: %s %q: larger than %s", ErrInvalid, key, s, humanize.IBytes(maxSize))
	}
	return n, nil
}
