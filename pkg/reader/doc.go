// Package reader provides result readers computing the value stored in every grid cell.
// Readers are plain Go functions, shell commands run per assignment or metrics
// recorded by an experiment in the snap metrics store.
package reader
