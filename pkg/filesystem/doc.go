// Package filesystem provides implementations of the types.FS
// interface: one backed by the OS and one backed by afero, which lets
// tests run the full installation engine against an in-memory fs.
package filesystem
