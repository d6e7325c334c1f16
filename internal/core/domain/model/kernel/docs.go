// Package kernel contains shared value objects used across the domain model.
// Its types are immutable, validated at construction, and reject their zero
// values through the constructor-guard pattern.
package kernel
