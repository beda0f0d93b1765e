// Package render turns allocation results into output.
//
// Three formats are supported: a lipgloss table for terminals, and JSON or
// YAML documents for scripts. The documents share one shape:
//
//	network: 192.168.1.0/24
//	records:
//	  - requested: 100
//	    subnetCidr: 192.168.1.0/25
//	    ...
//	summary:
//	  totalAddresses: 256
//	  ...
//
// Sizes and WriteSizes render the per-count block sizes shown by the size
// command.
package render
