// Package vlsm implements Variable Length Subnet Masking over a single
// IPv4 parent network.
//
// # Inputs
//
// The parent network is parsed from CIDR text. Host bits in the base
// address are cleared rather than rejected:
//
//	parent, err := vlsm.ParseParentNetwork("192.168.1.7/24") // 192.168.1.0/24
//
// Host requirements are parsed from a newline and/or comma separated list
// of positive integers and always sorted largest first:
//
//	reqs, err := vlsm.ParseHostRequirements("20\n100, 50") // [100 50 20]
//
// # Allocation
//
// AllocateNetwork walks a cursor from the parent's network address and
// hands each requirement the smallest block that holds it plus the
// network and broadcast addresses:
//
//	res, err := vlsm.AllocateNetwork(parent, reqs)
//	for _, r := range res.Records {
//	    fmt.Println(r.Requested, r.SubnetCIDR, r.Mask)
//	}
//
// Allocate does both steps from raw text.
//
// # Errors
//
// Every failure is a *Error carrying a Kind. The sentinels
// (ErrInvalidNetworkFormat, ErrInsufficientSpace, ...) match through
// errors.Is. An allocation failure is all-or-nothing: no Result is
// returned, and the records placed before the failure are available
// only through Error.Partial for diagnostics.
//
// The package holds no global state; concurrent calls are safe.
package vlsm
