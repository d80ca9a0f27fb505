package commands

// Version is set via ldflags at build time.
var Version = "1.0.0"

func init() {
	rootCmd.Version = Version
}
