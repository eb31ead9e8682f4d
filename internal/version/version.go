package version

// Version is overridden at release time via -ldflags.
var Version = "0.1.0-dev"
