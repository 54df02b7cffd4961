// Package kernel holds the value objects shared by every aggregate of the
// delivery domain. Today that is the UUID identifier.
package kernel
