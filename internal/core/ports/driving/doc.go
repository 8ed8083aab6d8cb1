// Package driving defines the interfaces that external actors (CLIs,
// servers, capture pipelines) use to operate the WebSketch core. These
// are the "driving" ports in hexagonal architecture terminology - they
// drive the library.
//
// Implementations live in internal/core/services. The public facade
// at the module root wires the default implementations together.
package driving
