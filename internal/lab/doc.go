// Package lab provides the listlab workbench: a concurrent stress runner
// over the lock-free list and an interactive terminal session over the
// cursor list.
package lab
