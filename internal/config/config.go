package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// planNameRegex validates plan names.
// Names must start with a lowercase letter or digit, followed by lowercase letters, digits, underscores, or hyphens.
var planNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidatePlanName checks if a plan name is valid.
func ValidatePlanName(name string) error {
	if name == "" {
		return fmt.Errorf("plan name cannot be empty")
	}

	if !planNameRegex.MatchString(name) {
		return fmt.Errorf("invalid plan name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

const (
	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "VLSM_CTL_CONFIG_DIR"

	ConfigFileName = "config.toml"
	PlansDirName   = "plans"
	planSuffix     = ".toml"

	DefaultNetwork = "192.168.1.0/24"
	DefaultFormat  = "table"
)

// ErrPlanNotFound is returned by LoadPlan when no file exists for the name.
var ErrPlanNotFound = errors.New("plan not found")

// DefaultHosts are the host counts the form starts with.
var DefaultHosts = []int{100, 50, 20}

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"table", "json", "yaml"}

// Config is the user configuration from config.toml
type Config struct {
	DefaultNetwork string `toml:"default_network"`
	DefaultHosts   []int  `toml:"default_hosts"`
	Format         string `toml:"format"`

	// Undecoded lists keys present in the file but unknown to Config.
	Undecoded []string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		DefaultNetwork: DefaultNetwork,
		DefaultHosts:   append([]int(nil), DefaultHosts...),
		Format:         DefaultFormat,
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if _, err := vlsm.ParseParentNetwork(c.DefaultNetwork); err != nil {
		return fmt.Errorf("default_network: %w", err)
	}

	if _, err := vlsm.NewRequirementSet(c.DefaultHosts); err != nil {
		return fmt.Errorf("default_hosts: %w", err)
	}

	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format: %s (must be %s)", c.Format, strings.Join(ValidFormats, ", "))
	}

	return nil
}

// DefaultHostsText renders DefaultHosts one per line, the way the form
// shows them.
func (c *Config) DefaultHostsText() string {
	return HostsText(c.DefaultHosts, "\n")
}

// Plan is a named, reusable pair of inputs stored in plans/<name>.toml.
type Plan struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Network     string `toml:"network"`
	Hosts       []int  `toml:"hosts"`
}

// Validate checks that the Plan is valid.
func (p *Plan) Validate() error {
	if err := ValidatePlanName(p.Name); err != nil {
		return err
	}

	if p.Network == "" {
		return fmt.Errorf("network is required")
	}
	if _, err := vlsm.ParseParentNetwork(p.Network); err != nil {
		return fmt.Errorf("network: %w", err)
	}

	if _, err := vlsm.NewRequirementSet(p.Hosts); err != nil {
		return fmt.Errorf("hosts: %w", err)
	}

	return nil
}

// HostsText renders the plan's hosts as allocator input.
func (p *Plan) HostsText() string {
	return HostsText(p.Hosts, ",")
}

// HostsText joins host counts with sep.
func HostsText(hosts []int, sep string) string {
	parts := make([]string, len(hosts))
	for i, h := range hosts {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return strings.Join(parts, sep)
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir  string
	ConfigFile string
	PlansDir   string
}

// NewPaths returns the paths rooted at configDir.
func NewPaths(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, ConfigFileName),
		PlansDir:   filepath.Join(configDir, PlansDirName),
	}
}

// DefaultPaths resolves the config directory from $VLSM_CTL_CONFIG_DIR,
// falling back to the user config directory.
func DefaultPaths() (*Paths, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return NewPaths(dir), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return NewPaths(filepath.Join(base, "vlsm-ctl")), nil
}

// LoadConfig loads config.toml from configDir. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(configDir string) (*Config, error) {
	cfg := Defaults()

	configPath := filepath.Join(configDir, ConfigFileName)
	md, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// planPath resolves a plan file inside plansDir. The name is validated
// first and the join cannot escape plansDir.
func planPath(plansDir, name string) (string, error) {
	if err := ValidatePlanName(name); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(plansDir, name+planSuffix)
}

// LoadPlan loads a plan by name
func LoadPlan(plansDir, name string) (*Plan, error) {
	path, err := planPath(plansDir, name)
	if err != nil {
		return nil, fmt.Errorf("invalid plan name: %w", err)
	}

	var plan Plan
	if _, err := toml.DecodeFile(path, &plan); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, name)
		}
		return nil, fmt.Errorf("failed to parse plan %s: %w", name, err)
	}

	// Set name from filename if not specified in the file
	if plan.Name == "" {
		plan.Name = name
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", name, err)
	}

	return &plan, nil
}

// ListPlans returns all valid plans, sorted by name. A missing directory
// yields no plans.
func ListPlans(plansDir string) ([]*Plan, error) {
	entries, err := os.ReadDir(plansDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plans directory: %w", err)
	}

	var plans []*Plan
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != planSuffix {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), planSuffix)
		plan, err := LoadPlan(plansDir, name)
		if err != nil {
			continue // Skip invalid plans
		}
		plans = append(plans, plan)
	}

	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	return plans, nil
}

// SavePlan validates and writes a plan to plansDir.
func SavePlan(plansDir string, plan *Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	if err := os.MkdirAll(plansDir, 0755); err != nil {
		return fmt.Errorf("failed to create plans directory: %w", err)
	}

	path, err := planPath(plansDir, plan.Name)
	if err != nil {
		return fmt.Errorf("invalid plan name: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(plan); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	return f.Close()
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
