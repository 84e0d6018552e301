// Package collector produces size snapshots of a tenant root's
// immediate children. Two production backends exist: a local
// filesystem walker and a wrapper around an external du-style command
// for distributed filesystems. Both satisfy types.Collector so the
// monitor and the tests never care which one is in play.
package collector
