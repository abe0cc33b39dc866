// Package services provides domain services for rules that do not belong to a
// single Order instance.
//
// The package includes:
//   - OrderAccess: ownership checks and symbol filtering shared by the order use cases
package services
