// Package config loads reel's configuration.
//
// Settings live in ~/.config/reel/config.toml (backend_url, poll_seconds,
// query_timeout_seconds). A missing file is not an error; defaults target a
// backend on localhost. The REEL_BACKEND_URL environment variable, read from
// the process environment or a .env file, overrides the file so deployments
// can point at a remote backend without editing TOML.
package config
