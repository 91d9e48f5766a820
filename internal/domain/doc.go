// Package domain defines the value types, error kinds and service contracts
// shared by the address arithmetic, range decomposition and CLI layers.
// It contains plain types and interfaces only.
package domain
