package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/shuffledraw/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the shuffledraw config file",
	Long: `Commands for managing the config file, which holds the draw service URL
and the defaults of the deck options form.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		existed := fileExists(configPath)

		if _, err := config.Init(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		if existed {
			fmt.Println("Config file already exists at:", configPath)
		} else {
			fmt.Println("Config file created at:", configPath)
		}
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		configPath := config.GetConfigFilePath()
		if fileExists(configPath) {
			fmt.Printf("# %s\n", configPath)
		} else {
			fmt.Printf("# %s (not created yet, showing defaults)\n", configPath)
		}
		fmt.Printf("# draw service in use: %s\n", cfg.ResolveAPIURL(apiURLFlag))

		return toml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting in the config file, creating the file if needed.

Keys: ` + strings.Join(config.Keys, ", "),
	Example: `  shuffledraw config set api_url https://draw.example.com
  shuffledraw config set deck_size major
  shuffledraw config set num_cards 3
  shuffledraw config set request_timeout 10s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("error setting %s: %w", args[0], err)
		}
		fmt.Printf("%s updated in %s\n", args[0], config.GetConfigFilePath())
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config, cache and log file locations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("config:", config.GetConfigFilePath())
		fmt.Println("cache: ", config.GetCacheDir())
		fmt.Println("log:   ", config.GetLogFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
