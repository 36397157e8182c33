package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindViper loads the configuration into commands before they run.
func bindViper(commands ...*cobra.Command) {
	cobra.OnInitialize(func() {
		cobra.CheckErr(loadConfig(commands...))
	})
}

// loadConfig fills flags not given on the command line from STACKM_*
// environment variables and the config file.
func loadConfig(commands ...*cobra.Command) (err error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("STACKM")
	v.AutomaticEnv()

	configFile := os.Getenv("STACKM_CONFIG")
	for _, cmd := range commands {
		if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Changed {
			configFile = flag.Value.String()
		}
	}
	configureConfigFile(v, configFile)

	for _, cmd := range commands {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
			err = v.BindPFlags(fs)
			if err != nil {
				return
			}
		}
	}

	err = readConfigFile(v, configFile != "")
	if err != nil {
		return
	}

	// Persistent flags show up in more than one set.
	seen := map[*pflag.Flag]bool{}
	for _, cmd := range commands {
		for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
			fs.VisitAll(func(fl *pflag.Flag) {
				if seen[fl] || fl.Changed || !v.IsSet(fl.Name) {
					return
				}
				seen[fl] = true

				if fl.Value.Type() == "stringArray" {
					for _, val := range v.GetStringSlice(fl.Name) {
						_ = fl.Value.Set(val)
					}
					return
				}
				val := fmt.Sprintf("%v", v.Get(fl.Name))
				if val != "" {
					_ = fl.Value.Set(val)
				}
			})
		}
	}

	return
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("stackm")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() (dirs []string) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "stackm"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "stackm"))
	}
	dirs = append(dirs, ".")

	return
}
