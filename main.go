package main

import (
	"log"

	"github.com/google/gops/agent"

	"github.com/umlforge/javauml/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	dirty   = "unknown"
)

func main() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("failed to start gops agent: %v", err)
	}
	defer agent.Close()

	cmd.SetVersionInfo(getVersionInfo)
	cmd.Execute()
}

func getVersionInfo() (string, string, string, bool) {
	isDirty := dirty == "true"
	v := version
	if isDirty {
		v += "-dirty"
	}
	return v, commit, date, isDirty
}
