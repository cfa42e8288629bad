// Package config loads everything vendorlink needs before it can provision
// links: tool settings layered with koanf, the ordered symlink rules declared
// in the project manifest, and an optional standalone rules file.
package config
