// Package order provides the Order aggregate root of the trading domain.
//
// The package includes:
//   - Order: identity, pricing, quantities and lifecycle of a single order
//   - Status: the lifecycle state machine
//   - Side and Type: the order direction and pricing behaviour, each with an
//     explicit Parse function for wire values
//
// Key business rules:
//   - Orders are placed Pending and move through Open and PartialFilled to Filled,
//     or end Cancelled (from Open/PartialFilled) or Rejected (from Pending)
//   - Limit prices lie in [MinPrice, MaxPrice] and are denominated in the quote currency
//   - Quantities lie in [MinQuantity, MaxQuantity]
//   - The filled quantity never decreases and never exceeds the quantity
//
// Failures are reported with the types of the domainerr package.
package order
