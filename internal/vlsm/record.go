package vlsm

import "net/netip"

// NotApplicable fills the host bounds of /31 and /32 subnets.
const NotApplicable = "N/A"

// Record is one allocated subnet. Records are never modified after the
// allocator appends them.
type Record struct {
	Requested   int    `json:"requested" yaml:"requested"`
	SubnetCIDR  string `json:"subnetCidr" yaml:"subnetCidr"`
	Mask        string `json:"mask" yaml:"mask"`
	FirstHost   string `json:"firstHost" yaml:"firstHost"`
	LastHost    string `json:"lastHost" yaml:"lastHost"`
	Broadcast   string `json:"broadcast" yaml:"broadcast"`
	UsableCount int    `json:"usableCount" yaml:"usableCount"`

	// Subnet is the typed form of SubnetCIDR.
	Subnet netip.Prefix `json:"-" yaml:"-"`
}

func newRecord(requested int, subnet netip.Prefix) Record {
	first := addrToUint(subnet.Addr())
	last := first + BlockSize(subnet.Bits()) - 1
	usable := UsableHosts(subnet.Bits())

	r := Record{
		Requested:   requested,
		SubnetCIDR:  subnet.String(),
		Mask:        maskString(subnet.Bits()),
		FirstHost:   NotApplicable,
		LastHost:    NotApplicable,
		Broadcast:   addrFromUint(last).String(),
		UsableCount: int(usable),
		Subnet:      subnet,
	}
	if usable > 0 {
		r.FirstHost = addrFromUint(first + 1).String()
		r.LastHost = addrFromUint(last - 1).String()
	}
	return r
}

// Result is a complete allocation: one record per requirement, largest
// requirement first.
type Result struct {
	Parent  ParentNetwork
	Records []Record
}

// Summary describes how much of the parent a Result consumed.
type Summary struct {
	TotalAddresses     uint64 `json:"totalAddresses" yaml:"totalAddresses"`
	AllocatedAddresses uint64 `json:"allocatedAddresses" yaml:"allocatedAddresses"`
	AlignmentGap       uint64 `json:"alignmentGap" yaml:"alignmentGap"`
	FreeAddresses      uint64 `json:"freeAddresses" yaml:"freeAddresses"`
	UsableHosts        uint64 `json:"usableHosts" yaml:"usableHosts"`
	RequestedHosts     uint64 `json:"requestedHosts" yaml:"requestedHosts"`
}

// Summary totals the records against the parent network.
func (r *Result) Summary() Summary {
	s := Summary{TotalAddresses: r.Parent.Size()}

	cursor := r.Parent.first()
	for _, rec := range r.Records {
		start := addrToUint(rec.Subnet.Addr())
		size := BlockSize(rec.Subnet.Bits())
		s.AlignmentGap += start - cursor
		s.AllocatedAddresses += size
		s.UsableHosts += uint64(rec.UsableCount)
		s.RequestedHosts += uint64(rec.Requested)
		cursor = start + size
	}
	s.FreeAddresses = s.TotalAddresses - s.AllocatedAddresses - s.AlignmentGap
	return s
}

// Utilization returns the allocated share of the parent in [0, 1].
func (s Summary) Utilization() float64 {
	if s.TotalAddresses == 0 {
		return 0
	}
	return float64(s.AllocatedAddresses) / float64(s.TotalAddresses)
}
