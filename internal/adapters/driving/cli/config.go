package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values.

Keys:
  content.dir                     - content directory
  validation.require_all_levels   - require levels 1-5 (true|false)
  validation.bilingual_policy     - bilingual convention violations (warn|reject)
  integrity.policy                - dangling cross-references (warn|fail)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || configStore == nil {
		return errors.New("settings service not configured")
	}

	policy := settingsService.ValidationPolicy()

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Println("[Content]")
	cmd.Printf("  Directory: %s\n", contentDir())
	cmd.Println()
	cmd.Println("[Validation]")
	cmd.Printf("  Require all levels: %t\n", policy.RequireAllLevels)
	cmd.Printf("  Bilingual policy: %s\n", policy.Bilingual)
	cmd.Println()
	cmd.Println("[Integrity]")
	cmd.Printf("  Policy: %s\n", settingsService.IntegrityPolicy())
	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("settings service not configured")
	}

	key, raw := args[0], args[1]
	value, err := parseConfigValue(key, raw)
	if err != nil {
		return err
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

// parseConfigValue validates a raw value against the key's type so bad
// values are rejected at set time, not at next load.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case driven.KeyContentDir:
		return raw, nil
	case driven.KeyRequireAllLevels:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		return b, nil
	case driven.KeyBilingualPolicy:
		if !domain.BilingualPolicy(raw).IsValid() {
			return nil, fmt.Errorf("%s expects warn or reject, got %q", key, raw)
		}
		return raw, nil
	case driven.KeyIntegrityPolicy:
		if !domain.IntegrityPolicy(raw).IsValid() {
			return nil, fmt.Errorf("%s expects warn or fail, got %q", key, raw)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown configuration key %q", key)
	}
}
