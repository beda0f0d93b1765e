package vlsm

import (
	"encoding/binary"
	"errors"
	"net/netip"
	"strings"
)

// ParentNetwork is the IPv4 network being subdivided. The zero value is not
// usable; build one with ParseParentNetwork or NewParentNetwork.
type ParentNetwork struct {
	prefix     netip.Prefix
	input      string
	normalized bool
}

// ParseParentNetwork parses A.B.C.D/N. A bare address is read as a /32.
// Host bits set in the address are cleared.
func ParseParentNetwork(text string) (ParentNetwork, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return ParentNetwork{}, &Error{Kind: InvalidNetworkFormat, Input: text}
	}

	var prefix netip.Prefix
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return ParentNetwork{}, &Error{Kind: InvalidNetworkFormat, Input: text, Cause: err}
		}
		prefix = p
	} else {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return ParentNetwork{}, &Error{Kind: InvalidNetworkFormat, Input: text, Cause: err}
		}
		prefix = netip.PrefixFrom(a, a.BitLen())
	}

	pn, err := NewParentNetwork(prefix)
	if err != nil {
		var vErr *Error
		if errors.As(err, &vErr) {
			vErr.Input = text
		}
		return ParentNetwork{}, err
	}
	pn.input = s
	return pn, nil
}

// NewParentNetwork wraps an already parsed prefix. Only IPv4 is accepted.
func NewParentNetwork(prefix netip.Prefix) (ParentNetwork, error) {
	if !prefix.IsValid() || !prefix.Addr().Is4() {
		return ParentNetwork{}, &Error{Kind: InvalidNetworkFormat, Input: prefix.String()}
	}
	masked := prefix.Masked()
	return ParentNetwork{
		prefix:     masked,
		input:      prefix.String(),
		normalized: masked.Addr() != prefix.Addr(),
	}, nil
}

// Prefix returns the canonical network prefix.
func (p ParentNetwork) Prefix() netip.Prefix { return p.prefix }

// Bits returns the prefix length.
func (p ParentNetwork) Bits() int { return p.prefix.Bits() }

// Addr returns the network address.
func (p ParentNetwork) Addr() netip.Addr { return p.prefix.Addr() }

// Broadcast returns the last address of the network.
func (p ParentNetwork) Broadcast() netip.Addr {
	return addrFromUint(p.last())
}

// Size returns the number of addresses in the network.
func (p ParentNetwork) Size() uint64 { return BlockSize(p.Bits()) }

// Input returns the text the network was parsed from.
func (p ParentNetwork) Input() string { return p.input }

// Normalized reports whether host bits were cleared while parsing.
func (p ParentNetwork) Normalized() bool { return p.normalized }

func (p ParentNetwork) String() string { return p.prefix.String() }

func (p ParentNetwork) first() uint64 { return addrToUint(p.prefix.Addr()) }

func (p ParentNetwork) last() uint64 { return p.first() + p.Size() - 1 }

// addrToUint and addrFromUint use uint64 so the address one past
// 255.255.255.255 can still be represented by the cursor.
func addrToUint(a netip.Addr) uint64 {
	b := a.As4()
	return uint64(binary.BigEndian.Uint32(b[:]))
}

func addrFromUint(v uint64) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return netip.AddrFrom4(b)
}

// maskString renders the dotted-quad mask for a prefix length.
func maskString(bits int) string {
	m := ^uint32(0) << (32 - bits)
	return addrFromUint(uint64(m)).String()
}
