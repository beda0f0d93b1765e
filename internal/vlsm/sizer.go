package vlsm

import "math/bits"

// RequiredPrefixLength returns the longest prefix whose block holds
// hostsNeeded usable addresses plus the network and broadcast addresses,
// i.e. the minimal p with 2^(32-p) >= hostsNeeded+2.
//
// The result is negative when no IPv4 block is large enough.
func RequiredPrefixLength(hostsNeeded int) int {
	if hostsNeeded < 0 {
		hostsNeeded = 0
	}
	// bits.Len64(n+1) is ceil(log2(n+2)); exact at powers of two.
	return 32 - bits.Len64(uint64(hostsNeeded)+1)
}

// BlockSize returns the number of addresses in a block of the given prefix
// length. Lengths outside 0..32 return 0.
func BlockSize(prefix int) uint64 {
	if prefix < 0 || prefix > 32 {
		return 0
	}
	return uint64(1) << (32 - prefix)
}

// UsableHosts returns the conventional host count of a block: the size
// minus network and broadcast. /31 and /32 have none.
func UsableHosts(prefix int) uint64 {
	size := BlockSize(prefix)
	if size <= 2 {
		return 0
	}
	return size - 2
}

// Mask returns the dotted-quad subnet mask for a prefix length, or an
// empty string for lengths outside 0..32.
func Mask(prefix int) string {
	if prefix < 0 || prefix > 32 {
		return ""
	}
	return maskString(prefix)
}
