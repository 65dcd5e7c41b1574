// Package registry is the outbound adapter for the institutional registry
// backend. Every call travels through a secure envelope: the plaintext JSON
// payload is encrypted with AES-256-GCM under a key derived from a shared
// secret, wrapped as {"Data": <blob>}, and the response is unwrapped the same
// way. Gateway implements the core's RegistryGateway port on top of the
// protocol client and owns the exact wire field names the backend's routes
// expect.
package registry
