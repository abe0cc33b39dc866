// Package kernel provides the value objects shared by the trading domain model.
//
// The package includes:
//   - Money: a non-negative decimal amount tagged with a currency code
//   - TradingPair: a base/quote currency pair parsed from a symbol
//   - OrderID: the identifier of an order
//
// All values are immutable and validate themselves inside their constructors;
// the zero value of each type is invalid and reports so from Validate.
// Decimal arithmetic is provided by github.com/shopspring/decimal so that
// amounts never suffer from binary floating point rounding.
package kernel
