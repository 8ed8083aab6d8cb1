// Package driven defines the interfaces the WebSketch core offers to
// its external collaborators. These are the "driven" or "secondary"
// ports in hexagonal architecture.
//
// The core itself is pure and synchronous; the only collaborator
// contract is TextHasher, the capture-time digest a browser-side
// capture tool uses when building text signals that outlive a single
// process.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or feature package
package driven
