package config

import (
	"errors"
	"fmt"

	"op3d/internal/convert"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.CacheDir == "" {
		return errors.New("paths.cache_dir must be set")
	}
	return nil
}

func (c *Config) validateConvert() error {
	if _, err := convert.ParseFormat(c.Convert.DefaultFormat); err != nil {
		return fmt.Errorf("convert.default_format %q is not a supported format", c.Convert.DefaultFormat)
	}
	return nil
}

func (c *Config) validateImport() error {
	switch c.Import.MaintainerType {
	case "individual", "manufacturer", "community":
		return nil
	}
	return fmt.Errorf("import.maintainer_type %q must be individual, manufacturer, or community", c.Import.MaintainerType)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
}
