// Package scriptest provides shared fixtures for tests: deterministic
// keypairs and a manual clock.
package scriptest
