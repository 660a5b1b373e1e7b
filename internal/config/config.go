package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"velo/internal/common"
)

// Config holds every tunable the doctor engine reads. It is built once at
// process start and passed to each component.
type Config struct {
	Home string `yaml:"home,omitempty" json:"home,omitempty"`

	TargetArchitecture string         `yaml:"target_architecture" json:"target_architecture"`
	MinOSVersions      map[string]int `yaml:"min_os_versions" json:"min_os_versions"`
	MinFreeDiskBytes   uint64         `yaml:"min_free_disk_bytes" json:"min_free_disk_bytes"`
	ProbeTimeout       time.Duration  `yaml:"probe_timeout" json:"probe_timeout"`

	ListingLimit   int      `yaml:"listing_limit" json:"listing_limit"`
	SampleCommands []string `yaml:"sample_commands" json:"sample_commands"`
	ManifestFile   string   `yaml:"manifest_file" json:"manifest_file"`
	LockFile       string   `yaml:"lock_file" json:"lock_file"`

	LogLevel string `yaml:"log_level" json:"log_level"`

	Dependencies DependencyOverrides `yaml:"dependencies" json:"dependencies"`
}

// DependencyOverrides pins packages to one side of the dependency heuristic.
type DependencyOverrides struct {
	ForceDependency []string `yaml:"force_dependency,omitempty" json:"force_dependency,omitempty"`
	ForceUser       []string `yaml:"force_user,omitempty" json:"force_user,omitempty"`
}

// Default returns the built-in configuration for the given home directory.
func Default(home string) *Config {
	minVersions := make(map[string]int, len(defaultMinOSVersions))
	for k, v := range defaultMinOSVersions {
		minVersions[k] = v
	}

	return &Config{
		Home:               home,
		TargetArchitecture: DefaultTargetArchitecture,
		MinOSVersions:      minVersions,
		MinFreeDiskBytes:   DefaultMinFreeDiskBytes,
		ProbeTimeout:       DefaultProbeTimeout,
		ListingLimit:       DefaultListingLimit,
		SampleCommands:     append([]string(nil), defaultSampleCommands...),
		ManifestFile:       DefaultManifestFile,
		LockFile:           DefaultLockFile,
		LogLevel:           DefaultLogLevel,
	}
}

// MinOSVersion returns the minimum major version for goos, or 0 when none is configured.
func (c *Config) MinOSVersion(goos string) int {
	return c.MinOSVersions[goos]
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Home) == "" {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_EMPTY, "home"))
	} else if !filepath.IsAbs(c.Home) {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_NOT_ABSOLUTE, "home", c.Home))
	}
	if strings.TrimSpace(c.TargetArchitecture) == "" {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_EMPTY, "target_architecture"))
	}
	if c.MinFreeDiskBytes == 0 {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_NOT_POSITIVE, "min_free_disk_bytes"))
	}
	if c.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_NOT_POSITIVE, "probe_timeout"))
	}
	if c.ListingLimit <= 0 {
		errs = append(errs, fmt.Errorf(ERROR_FIELD_NOT_POSITIVE, "listing_limit"))
	}
	for goos, major := range c.MinOSVersions {
		if major < 0 {
			errs = append(errs, fmt.Errorf(ERROR_NEGATIVE_OS_VERSION, goos))
		}
	}
	for field, name := range map[string]string{"manifest_file": c.ManifestFile, "lock_file": c.LockFile} {
		if name == "" {
			errs = append(errs, fmt.Errorf(ERROR_FIELD_EMPTY, field))
		} else if filepath.Base(name) != name {
			errs = append(errs, fmt.Errorf(ERROR_FIELD_NOT_FILE_NAME, field, name))
		}
	}
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	forced := make(map[string]bool, len(c.Dependencies.ForceDependency))
	for _, name := range c.Dependencies.ForceDependency {
		forced[name] = true
	}
	for _, name := range c.Dependencies.ForceUser {
		if forced[name] {
			errs = append(errs, fmt.Errorf(ERROR_CONFLICTING_PACKAGE, name))
		}
	}

	return errors.Join(errs...)
}
