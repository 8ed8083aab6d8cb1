// Package services implements the driving ports: validation, strict
// parsing, fingerprinting, diffing, and rendering. Services are thin
// orchestrators over the feature packages; they add pipeline tracing
// via the logger and nothing else. All of them are stateless and safe
// for concurrent use.
package services
