package model

// Version is the released version, overridden at build time via -ldflags.
var Version = "0.1.0"
