package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tuit.yaml"), `
twitter_id: key
twitter_secret: secret
twitter_access_token: token
twitter_access_secret: token-secret
twitter_username: "@me"
`)
	v := viper.New()
	if err := ReadConfig(v, "", dir); err != nil {
		t.Fatal(err)
	}
	cfg := ConfigFrom(v)
	if !cfg.Credentials.Complete() {
		t.Errorf("incomplete credentials %+v", cfg.Credentials)
	}
	if cfg.Credentials.AccessSecret != "token-secret" {
		t.Errorf("access secret %q", cfg.Credentials.AccessSecret)
	}
	if cfg.Username != "me" {
		t.Errorf("username %q", cfg.Username)
	}
	if cfg.MaxArgs != DefaultMaxArgs {
		t.Errorf("max args %d", cfg.MaxArgs)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	v := viper.New()
	if err := ReadConfig(v, filepath.Join(t.TempDir(), ".env"), t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if ConfigFrom(v).Credentials.Complete() {
		t.Error("credentials from nowhere")
	}
}

func TestReadConfigBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tuit.json"), "{not json")
	if err := ReadConfig(viper.New(), "", dir); err == nil {
		t.Error("broken config file accepted")
	}
}

func TestReadConfigEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tuit.yaml"), "twitter_username: fromfile\nmax_args: 3\n")
	env := filepath.Join(dir, ".env")
	writeFile(t, env, "TUIT_TWITTER_ID=fromdotenv\n")
	t.Cleanup(func() { os.Unsetenv("TUIT_TWITTER_ID") })
	t.Setenv("TUIT_TWITTER_USERNAME", "fromenv")

	v := viper.New()
	if err := ReadConfig(v, env, dir); err != nil {
		t.Fatal(err)
	}
	cfg := ConfigFrom(v)
	if cfg.Credentials.ConsumerKey != "fromdotenv" {
		t.Errorf("consumer key %q", cfg.Credentials.ConsumerKey)
	}
	if cfg.Username != "fromenv" {
		t.Errorf("username %q", cfg.Username)
	}
	if cfg.MaxArgs != 3 {
		t.Errorf("max args %d", cfg.MaxArgs)
	}
}

func TestConfigureLogging(t *testing.T) {
	v := viper.New()
	v.Set("verbosity", "2")
	if err := configureLogging(v); err != nil {
		t.Fatal(err)
	}
	if got := flag.Lookup("v").Value.String(); got != "2" {
		t.Errorf("v = %q", got)
	}
	v.Set("verbosity", "loud")
	if err := configureLogging(v); err == nil {
		t.Error("bad verbosity accepted")
	}
	v.Set("verbosity", "0")
	if err := configureLogging(v); err != nil {
		t.Fatal(err)
	}
}
