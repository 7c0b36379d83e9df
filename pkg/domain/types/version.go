package types

// AppName identifies this service in MCP handshakes, logs and health responses.
const AppName = "farrier"

// Version is the application version, overridden at build time via ldflags.
var Version = "0.1.0"
