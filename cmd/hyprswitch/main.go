package main

import (
	"os"
	"regexp"
)

var labelPrefix = regexp.MustCompile(`^-?\d+: `)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(labelSafeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// labelSafeArgs ends flag parsing before the first window label, so labels
// such as "-1: foo, Workspace: 2" are never read as shorthand flags.
func labelSafeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if labelPrefix.MatchString(arg) {
			safe := append([]string{}, args[:i]...)
			safe = append(safe, "--")
			return append(safe, args[i:]...)
		}
	}
	return args
}
