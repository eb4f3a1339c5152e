package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dichro/tuit/twitter/api"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	id           = "twitter_id"
	secret       = "twitter_secret"
	accessToken  = "twitter_access_token"
	accessSecret = "twitter_access_secret"
	username     = "twitter_username"
	maxArgs      = "max_args"
)

// config keys that are handed to glog, and the glog flag each one sets
var logFlags = map[string]string{
	"verbosity":   "v",
	"vmodule":     "vmodule",
	"log_dir":     "log_dir",
	"logtostderr": "logtostderr",
}

type Config struct {
	Credentials api.Credentials
	Username    string
	MaxArgs     int
}

// ReadConfig loads envFile, if present, into the environment and then reads
// the "tuit" config file from the first of paths that has one. Environment
// variables prefixed TUIT_ override the file. A missing config file is fine.
func ReadConfig(v *viper.Viper, envFile string, paths ...string) error {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
		}
	}

	v.SetConfigName("tuit")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("tuit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(maxArgs, DefaultMaxArgs)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func ConfigFrom(v *viper.Viper) Config {
	return Config{
		Credentials: api.Credentials{
			ConsumerKey:    v.GetString(id),
			ConsumerSecret: v.GetString(secret),
			AccessToken:    v.GetString(accessToken),
			AccessSecret:   v.GetString(accessSecret),
		},
		Username: strings.TrimPrefix(v.GetString(username), "@"),
		MaxArgs:  v.GetInt(maxArgs),
	}
}

// configureLogging copies logging settings from v onto glog's flags. The
// command line is never parsed for them since it belongs to the dispatcher.
func configureLogging(v *viper.Viper) error {
	if pflag.CommandLine.Lookup("v") == nil {
		pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	}
	for key, name := range logFlags {
		if !v.IsSet(key) {
			continue
		}
		if err := pflag.CommandLine.Set(name, v.GetString(key)); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	// glog complains when logging before the go flag set is parsed
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
	glog.V(1).Infof("logging configured from %s", v.ConfigFileUsed())
	return nil
}
