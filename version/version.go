package version

// Version is the application version, set at build time with
// -ldflags "-X github.com/ebob10000/deskclock/version.Version=1.2.3"
var Version = "dev"
