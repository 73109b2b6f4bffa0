package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/reversi/terminal"
)

func main() {
	// Panic recovery: the session has already restored the terminal by the
	// time a panic reaches here
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "15:04:05.000",
	})
	logger.SetLevel(logrus.InfoLevel)

	if err := run(logger, os.Args[1:]); err != nil {
		// Errors go to stderr regardless of the log file
		logger.SetOutput(os.Stderr)
		logger.Fatal(err)
	}
}

func run(logger *logrus.Logger, args []string) error {
	root := Root(logger)
	root.SetArgs(args)
	return root.Execute()
}
