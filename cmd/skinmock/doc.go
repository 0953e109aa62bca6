// Command skinmock serves the mock skincare-tracking API.
//
// Usage:
//
//   skinmock --listen 0.0.0.0:5000 --shutdown-timeout 5s
//
// Flags:
//   --config             TOML config file (default ./skinmock.toml; missing is fine)
//   --listen             HTTP bind address (default 0.0.0.0:5000)
//   --quiet              turn off debug logging and gin debug mode (on by default)
//   --log-file           also write logs to a rotating file
//   --shutdown-timeout   graceful shutdown timeout
//
// Every flag can also be set through a SKINMOCK_* environment variable.
// Precedence is defaults, then the config file, then flags/env.
//
// Behavior:
//
// Seeds the progress history, starts the API server, and blocks on
// SIGINT/SIGTERM for graceful shutdown. History lives in memory only and is
// reset on every start.
package main
