// Config loading for the logbook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/logbook/internal/paths"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyOwner  = "owner"
	cfgKeyRepo   = "repo"
	cfgKeyBranch = "branch"
)

// Token environment variables, in precedence order after the --token flag.
// The token is never read from or written to config.yaml.
var tokenEnvVars = []string{"LOGBOOK_TOKEN", "GITHUB_TOKEN"}

// configFileHeader prefixes the generated config.yaml. The token never goes
// into the file; Config marshals it away via its yaml tag.
const configFileHeader = `# Logbook CLI configuration.
# The access token is NOT stored here; pass --token or set LOGBOOK_TOKEN.
`

// loadConfig resolves the config directory, reads config.yaml through Viper,
// and merges flag overrides on top. A missing config.yaml is created with
// defaults on first run.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBranch, types.DefaultBranch)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Owner:  v.GetString(cfgKeyOwner),
		Repo:   v.GetString(cfgKeyRepo),
		Branch: v.GetString(cfgKeyBranch),
		Token:  resolveToken(),
	}
	if flagOwner != "" {
		cfg.Owner = flagOwner
	}
	if flagRepo != "" {
		cfg.Repo = flagRepo
	}
	if flagBranch != "" {
		cfg.Branch = flagBranch
	}
	return cfg, nil
}

// resolveToken returns the credential: --token flag first, then the token
// environment variables in order. Empty means read-only operation.
func resolveToken() string {
	if flagToken != "" {
		return flagToken
	}
	for _, name := range tokenEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	body, err := yaml.Marshal(types.Config{Branch: types.DefaultBranch})
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	return os.WriteFile(path, append([]byte(configFileHeader), body...), 0o644)
}
