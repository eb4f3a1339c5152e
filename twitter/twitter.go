package main

import (
	"github.com/dichro/tuit/twitter/cmd"
	"github.com/golang/glog"
	"github.com/spf13/viper"
)

func main() {
	if err := cmd.ReadConfig(viper.GetViper(), ".env", "$HOME/.config", "."); err != nil {
		glog.Exit(err)
	}
	cmd.Execute()
}

// -t text: post a status
// -dm user text: send a direct message
// -tl, -m, -gm, -f: list timeline, mentions, messages, favorites
// -help: usage
