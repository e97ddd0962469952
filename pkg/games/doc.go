// Package games loads the YAML game catalog and runs the selection menu whose
// chosen rules seed the first chat turn.
package games
