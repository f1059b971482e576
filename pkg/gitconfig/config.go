package gitconfig

import (
	"fmt"
	"strings"

	"github.com/wizardgit/wgit/pkg/common/err"
	"github.com/wizardgit/wgit/pkg/common/fileops"
	"github.com/wizardgit/wgit/pkg/repository/gitpath"
)

const pkgName = "gitconfig"

// Config is an ordered INI-style configuration, the format the control
// directory's config file uses:
//
//	[core]
//	    repositoryformatversion = 0
//	    filemode = false
//	    bare = false
//
// Sections and keys keep their insertion order so serialization is stable.
type Config struct {
	sections []*section
}

type section struct {
	name    string
	entries []*entry
}

type entry struct {
	key   string
	value string
}

// New creates an empty Config.
func New() *Config {
	return &Config{}
}

// Default returns the configuration a fresh repository is initialized with.
func Default() *Config {
	cfg := New()
	cfg.Set("core", "repositoryformatversion", "0")
	cfg.Set("core", "filemode", "false")
	cfg.Set("core", "bare", "false")
	return cfg
}

// Get returns the value for section/key, or false if it is not present.
func (c *Config) Get(sectionName, key string) (string, bool) {
	sec := c.findSection(sectionName)
	if sec == nil {
		return "", false
	}
	for _, e := range sec.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Set stores a value, replacing an existing entry for the same key and
// creating the section if needed.
func (c *Config) Set(sectionName, key, value string) {
	sec := c.findSection(sectionName)
	if sec == nil {
		sec = &section{name: sectionName}
		c.sections = append(c.sections, sec)
	}
	for _, e := range sec.entries {
		if e.key == key {
			e.value = value
			return
		}
	}
	sec.entries = append(sec.entries, &entry{key: key, value: value})
}

// Sections returns the section names in order.
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for _, sec := range c.sections {
		names = append(names, sec.name)
	}
	return names
}

func (c *Config) findSection(name string) *section {
	for _, sec := range c.sections {
		if sec.name == name {
			return sec
		}
	}
	return nil
}

// Serialize renders the configuration in INI format.
func (c *Config) Serialize() string {
	var buf strings.Builder
	for _, sec := range c.sections {
		fmt.Fprintf(&buf, "[%s]\n", sec.name)
		for _, e := range sec.entries {
			fmt.Fprintf(&buf, "\t%s = %s\n", e.key, e.value)
		}
	}
	return buf.String()
}

// Parse reads an INI-formatted configuration. Lines starting with '#' or
// ';' are comments; keys outside any section are rejected.
func Parse(content string) (*Config, error) {
	cfg := New()
	var current *section

	for lineno, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
					fmt.Sprintf("unterminated section header on line %d: %q", lineno+1, line), nil)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
					fmt.Sprintf("empty section name on line %d", lineno+1), nil)
			}
			current = cfg.findSection(name)
			if current == nil {
				current = &section{name: name}
				cfg.sections = append(cfg.sections, current)
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
				fmt.Sprintf("malformed line %d: %q", lineno+1, line), nil)
		}
		if current == nil {
			return nil, err.New(pkgName, err.CodeInvalidFormat, "parse",
				fmt.Sprintf("key outside of section on line %d: %q", lineno+1, line), nil)
		}
		current.entries = append(current.entries, &entry{
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
		})
	}

	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path gitpath.AbsolutePath) (*Config, error) {
	content, rdErr := fileops.ReadString(path)
	if rdErr != nil {
		return nil, rdErr
	}
	return Parse(content)
}

// Save writes the configuration file atomically.
func (c *Config) Save(path gitpath.AbsolutePath) error {
	return fileops.WriteString(path, c.Serialize())
}
