package vlsm

import (
	"net/netip"
	"slices"
)

// state is the allocator's position in Ready -> Allocating -> {Done, Failed}.
type state int

const (
	stateReady state = iota
	stateAllocating
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateReady:
		return "ready"
	case stateAllocating:
		return "allocating"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// allocator owns the cursor for a single run.
type allocator struct {
	parent  ParentNetwork
	cursor  uint64
	state   state
	records []Record
	err     *Error
}

func newAllocator(parent ParentNetwork) *allocator {
	return &allocator{
		parent: parent,
		cursor: parent.first(),
		state:  stateReady,
	}
}

// remaining returns the free addresses from the cursor to the parent's
// broadcast address inclusive.
func (a *allocator) remaining() uint64 {
	last := a.parent.last()
	if a.cursor > last {
		return 0
	}
	return last - a.cursor + 1
}

// place assigns the next subnet. Any error moves the allocator to
// stateFailed and it accepts no further requirements.
func (a *allocator) place(hosts int) (Record, error) {
	if a.state == stateFailed {
		return Record{}, a.err
	}
	a.state = stateAllocating

	prefix := RequiredPrefixLength(hosts)
	if prefix < a.parent.Bits() {
		return Record{}, a.fail(&Error{
			Kind:        PrefixTooShort,
			Requirement: hosts,
			Prefix:      prefix,
			Remaining:   a.remaining(),
		})
	}

	if remaining := a.remaining(); uint64(hosts)+2 > remaining {
		return Record{}, a.fail(&Error{
			Kind:        InsufficientSpace,
			Requirement: hosts,
			Prefix:      prefix,
			Remaining:   remaining,
		})
	}

	size := BlockSize(prefix)
	start := alignUp(a.cursor, size)
	candidate := netip.PrefixFrom(addrFromUint(start), prefix)

	if start+size-1 > a.parent.last() {
		return Record{}, a.fail(&Error{
			Kind:        ParentBoundaryExceeded,
			Requirement: hosts,
			Prefix:      prefix,
			Subnet:      candidate,
			Remaining:   a.remaining(),
		})
	}

	rec := newRecord(hosts, candidate)
	a.records = append(a.records, rec)
	a.cursor = start + size
	return rec, nil
}

func (a *allocator) fail(err *Error) *Error {
	a.state = stateFailed
	a.err = err
	err.Parent = a.parent.Prefix()
	err.Partial = slices.Clone(a.records)
	return err
}

// alignUp rounds v up to a multiple of size, which must be a power of two.
func alignUp(v, size uint64) uint64 {
	return (v + size - 1) &^ (size - 1)
}

// AllocateNetwork places every requirement into parent, largest first. It is
// all-or-nothing: on error the Result is nil and the records placed so far
// are only reachable through (*Error).Partial.
func AllocateNetwork(parent ParentNetwork, reqs RequirementSet) (*Result, error) {
	if !parent.Prefix().IsValid() {
		return nil, &Error{Kind: InvalidNetworkFormat}
	}
	if reqs.Len() == 0 {
		return nil, &Error{Kind: EmptyRequirementList}
	}

	hosts := reqs.Hosts()
	sortDescending(hosts)

	a := newAllocator(parent)
	for _, h := range hosts {
		if _, err := a.place(h); err != nil {
			return nil, err
		}
	}
	a.state = stateDone

	return &Result{Parent: parent, Records: a.records}, nil
}

// Allocate parses both raw inputs and runs AllocateNetwork. The network is
// validated first; no allocation happens if either input is invalid.
func Allocate(parentNetworkText, hostRequirementsText string) (*Result, error) {
	parent, err := ParseParentNetwork(parentNetworkText)
	if err != nil {
		return nil, err
	}
	reqs, err := ParseHostRequirements(hostRequirementsText)
	if err != nil {
		return nil, err
	}
	return AllocateNetwork(parent, reqs)
}
