package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/slyubomirsky/sumo-ilp/internal/sumo/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := sumoILP(); err != nil {
		logrus.Fatal(err)
	}
}

func sumoILP() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
