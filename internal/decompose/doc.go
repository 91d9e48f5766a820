// Package decompose splits an inclusive IPv4 address range into the smallest
// ordered set of CIDR blocks whose union is exactly that range.
//
// # Algorithm
//
// Starting at the first address, each step picks the largest block that is
// both aligned at the current address and ends at or before the last address,
// emits it, and continues right after it. Blocks come out in ascending order,
// contiguous and non-overlapping, and the last one ends exactly at the end of
// the range.
package decompose
