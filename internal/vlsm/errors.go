package vlsm

import (
	"errors"
	"fmt"
	"net/netip"
)

// Kind identifies why a parse or allocation failed.
type Kind int

const (
	InvalidNetworkFormat Kind = iota + 1
	InvalidHostCount
	EmptyRequirementList
	InsufficientSpace
	PrefixTooShort
	ParentBoundaryExceeded
)

func (k Kind) String() string {
	switch k {
	case InvalidNetworkFormat:
		return "InvalidNetworkFormat"
	case InvalidHostCount:
		return "InvalidHostCount"
	case EmptyRequirementList:
		return "EmptyRequirementList"
	case InsufficientSpace:
		return "InsufficientSpace"
	case PrefixTooShort:
		return "PrefixTooShort"
	case ParentBoundaryExceeded:
		return "ParentBoundaryExceeded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsInputError reports whether the kind is raised before any allocation.
func (k Kind) IsInputError() bool {
	return k == InvalidNetworkFormat || k == InvalidHostCount || k == EmptyRequirementList
}

// Sentinels for errors.Is.
var (
	ErrInvalidNetworkFormat   = errors.New("invalid network format")
	ErrInvalidHostCount       = errors.New("invalid host count")
	ErrEmptyRequirementList   = errors.New("empty requirement list")
	ErrInsufficientSpace      = errors.New("insufficient space")
	ErrPrefixTooShort         = errors.New("prefix too short")
	ErrParentBoundaryExceeded = errors.New("parent boundary exceeded")
)

func (k Kind) sentinel() error {
	switch k {
	case InvalidNetworkFormat:
		return ErrInvalidNetworkFormat
	case InvalidHostCount:
		return ErrInvalidHostCount
	case EmptyRequirementList:
		return ErrEmptyRequirementList
	case InsufficientSpace:
		return ErrInsufficientSpace
	case PrefixTooShort:
		return ErrPrefixTooShort
	case ParentBoundaryExceeded:
		return ErrParentBoundaryExceeded
	}
	return nil
}

// Error is returned by every parse and allocation function in this package.
type Error struct {
	Kind Kind

	// Input is the offending raw text for parse errors.
	Input string

	// Requirement is the host count that failed to allocate.
	Requirement int
	// Prefix is the prefix length Requirement needs.
	Prefix int
	// Parent is the network being subdivided.
	Parent netip.Prefix
	// Subnet is the rejected candidate (ParentBoundaryExceeded only).
	Subnet netip.Prefix
	// Remaining is the number of free addresses left at the cursor.
	Remaining uint64

	// Partial holds the records placed before the failure. They are not a
	// valid allocation.
	Partial []Record

	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message(), e.Cause)
	}
	return e.Message()
}

// Message returns the user-facing description without the cause.
func (e *Error) Message() string {
	switch e.Kind {
	case InvalidNetworkFormat:
		return fmt.Sprintf("invalid IP address or prefix format %q (use a form like 192.168.1.0/24)", e.Input)
	case InvalidHostCount:
		return fmt.Sprintf("invalid host count %q: requested hosts must be positive integers (e.g. 100, 50, 20)", e.Input)
	case EmptyRequirementList:
		return "no host requirements were given"
	case InsufficientSpace:
		return fmt.Sprintf("unable to allocate %d hosts: %d addresses remain in %s, %d are needed",
			e.Requirement, e.Remaining, e.Parent, uint64(e.Requirement)+2)
	case PrefixTooShort:
		return fmt.Sprintf("%d hosts need prefix /%d, which is shorter than the parent prefix /%d; VLSM can only subdivide the parent network",
			e.Requirement, e.Prefix, e.Parent.Bits())
	case ParentBoundaryExceeded:
		return fmt.Sprintf("unable to allocate %d hosts: subnet %s would exceed the parent network %s",
			e.Requirement, e.Subnet, e.Parent)
	}
	return "vlsm: unknown error"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel for e.Kind. A PrefixTooShort error also matches
// ErrInsufficientSpace: a block larger than the parent never fits in it.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if target == e.Kind.sentinel() {
		return true
	}
	return e.Kind == PrefixTooShort && target == ErrInsufficientSpace
}

// FailedRequirement returns the host count that stopped the run, if the
// error came from the allocation loop.
func (e *Error) FailedRequirement() (int, bool) {
	if e.Kind.IsInputError() {
		return 0, false
	}
	return e.Requirement, true
}

// KindOf returns the Kind of err, or 0 if err is not a *Error.
func KindOf(err error) Kind {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return 0
}
