// Package addr converts IPv4 addresses between their uint32 and dotted-quad
// forms and analyzes single CIDR blocks.
//
// Contents
//
//   - Parsing and formatting (ParseAddress, FormatAddress, ParsePrefixLength)
//   - Masks and their binary rendering (Mask, MaskBinary, Binary)
//   - Single-block analysis (Analyze): network, broadcast, mask, address
//     count and, for prefixes up to /30, the usable host range
//
// # Notes
//
// Every function is pure. Invalid input is reported as *domain.FormatError or
// *domain.RangeError; nothing is logged or retried.
package addr
