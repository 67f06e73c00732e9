/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package web

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
)

const (
	// BaseURLProperty is the property key holding the https base URL.
	BaseURLProperty = "baseUrl"
	// BasePathProperty is the property key holding the storage directory.
	BasePathProperty = "basePath"

	// BaseURLEnvKey is the environment variable read when no base URL property is supplied.
	BaseURLEnvKey = "uniregistrar_driver_did_web_baseUrl"
	// BasePathEnvKey is the environment variable read when no base path property is supplied.
	BasePathEnvKey = "uniregistrar_driver_did_web_basePath"

	httpsScheme  = "https"
	probePattern = ".didweb-probe-*"
)

// Config holds the registrar configuration. It is validated once by New and never changes
// afterwards.
type Config struct {
	// BaseURL is an https URL, its host becomes the did:web domain.
	BaseURL string `mapstructure:"baseUrl"`
	// BasePath is the directory documents are written under. It must exist and be writable.
	BasePath string `mapstructure:"basePath"`
}

// PropertiesFromEnv loads the registrar properties from the environment. Unset or empty
// variables are left out of the returned map.
func PropertiesFromEnv() map[string]interface{} {
	props := make(map[string]interface{})

	if v := os.Getenv(BaseURLEnvKey); v != "" {
		props[BaseURLProperty] = v
	}

	if v := os.Getenv(BasePathEnvKey); v != "" {
		props[BasePathProperty] = v
	}

	logger.Debugf("loaded properties from environment: %v", props)

	return props
}

// ConfigFromProperties decodes a host supplied property map into a Config.
func ConfigFromProperties(props map[string]interface{}) (*Config, error) {
	cfg := &Config{}

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w --> create properties decoder --> %w", ErrConfiguration, err)
	}

	if err = d.Decode(props); err != nil {
		return nil, fmt.Errorf("%w --> decode properties --> %w", ErrConfiguration, err)
	}

	return cfg, nil
}

// Properties returns the configuration as a property map.
func (c *Config) Properties() map[string]interface{} {
	return map[string]interface{}{
		BaseURLProperty:  c.BaseURL,
		BasePathProperty: c.BasePath,
	}
}

// validate checks the configuration against fs and returns the parsed base URL.
func (c *Config) validate(fs afero.Fs) (*url.URL, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("%w --> base URL is not defined", ErrConfiguration)
	}

	baseURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w --> parse base URL --> %w", ErrConfiguration, err)
	}

	if !strings.EqualFold(baseURL.Scheme, httpsScheme) {
		return nil, fmt.Errorf("%w --> protocol must be https, provided URL protocol is '%s'",
			ErrConfiguration, baseURL.Scheme)
	}

	if baseURL.Hostname() == "" {
		return nil, fmt.Errorf("%w --> base URL '%s' has no host", ErrConfiguration, c.BaseURL)
	}

	if c.BasePath == "" {
		return nil, fmt.Errorf("%w --> base path is not defined", ErrConfiguration)
	}

	info, err := fs.Stat(c.BasePath)
	if err != nil {
		return nil, fmt.Errorf("%w --> base path '%s' --> %w", ErrConfiguration, c.BasePath, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w --> base path '%s' is not a directory", ErrConfiguration, c.BasePath)
	}

	if err = probeWritable(fs, c.BasePath); err != nil {
		return nil, fmt.Errorf("%w --> base path '%s' is not writable --> %w", ErrConfiguration, c.BasePath, err)
	}

	return baseURL, nil
}

// probeWritable creates and removes a temporary file in dir.
func probeWritable(fs afero.Fs, dir string) error {
	f, err := afero.TempFile(fs, dir, probePattern)
	if err != nil {
		return err
	}

	name := f.Name()

	if err = f.Close(); err != nil {
		logger.Warnf("failed to close probe file %s: %v", name, err)
	}

	return fs.Remove(filepath.Clean(name))
}
