// Package cake contains the ordering domain's aggregate and value objects:
// the Cake order record, the closed Category/Size/DecorationKind
// enumerations, and the Decoration snapshot applied to orders.
package cake
