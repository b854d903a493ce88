package version

// Version is the program version. It can be overridden at build time with
// -ldflags "-X fastakit/internal/version.Version=...".
var Version = "0.1.0"
