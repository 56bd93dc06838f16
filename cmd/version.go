package cmd

// Version is the application version.
// This value is intended to be set at build time using ldflags.
// Example: go build -ldflags "-X github.com/browseragentprotocol/bap-go/cmd.Version=0.2.0"
var Version = "0.2.0"
