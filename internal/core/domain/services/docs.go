// Package services contains domain services that do not belong to a single
// aggregate: the mutable pricing catalog, the per-category identity
// generator, and the cake factory that combines them to place orders.
package services
