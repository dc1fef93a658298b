package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

// Config is the optional INI file describing where inputs live and
// which answers are already known to be correct:
//
//	[2021]
//	inputs = /home/me/aoc/2021
//
//	[2021.answers]
//	14 = 2891 4607749009683
type Config struct {
	file ini.File
}

// DefaultConfigPath is advent.ini in the user's config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "advent.ini"
	}
	return filepath.Join(dir, "advent.ini")
}

// LoadConfig reads the config file at path. A missing file yields an
// empty config.
func LoadConfig(path string) (*Config, error) {
	f, err := ini.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{file: make(ini.File)}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return &Config{file: f}, nil
}

// ParseConfig reads a config from r.
func ParseConfig(r io.Reader) (*Config, error) {
	f, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	return &Config{file: f}, nil
}

// InputDir is the directory holding the inputs for year.
func (c *Config) InputDir(year int) string {
	if dir, ok := c.file.Get(strconv.Itoa(year), "inputs"); ok && dir != "" {
		return dir
	}
	return filepath.Join("input", strconv.Itoa(year))
}

// InputPath is the conventional input file for one day: NN.txt in
// the year's input directory.
func (c *Config) InputPath(year int, day string) string {
	name := day
	if n, err := strconv.Atoi(day); err == nil {
		name = fmt.Sprintf("%02d", n)
	}
	return filepath.Join(c.InputDir(year), name+".txt")
}

// Answers returns the recorded answers for a day, in part order.
func (c *Config) Answers(year int, day string) ([]string, bool) {
	section := c.file.Section(strconv.Itoa(year) + ".answers")
	keys := []string{day}
	if n, err := strconv.Atoi(day); err == nil {
		keys = append(keys, strconv.Itoa(n), fmt.Sprintf("%02d", n))
	}
	for _, k := range keys {
		if v, ok := section[k]; ok {
			return strings.Fields(v), true
		}
	}
	return nil, false
}

// Check compares res against the recorded answers for a day.
// Multi-line answers (rendered letters) are not compared.
func (c *Config) Check(year int, day string, res Result) error {
	want, ok := c.Answers(year, day)
	if !ok {
		return nil
	}
	got := []string{res.Part1, res.Part2}
	for i, w := range want {
		if i >= len(got) {
			break
		}
		if strings.Contains(got[i], "\n") {
			continue
		}
		if got[i] != w {
			return fmt.Errorf("day %s part %d: got %s; want %s", day, i+1, got[i], w)
		}
	}
	return nil
}
