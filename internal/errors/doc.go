// Package errors provides typed errors with exit codes for vlsm-ctl.
//
// # Error Types
//
// CtlError wraps an error with an exit code:
//
//	type CtlError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess           = 0  // Success
//	ExitGeneralError      = 1  // General/unknown errors
//	ExitInvalidInput      = 2  // Network or host list could not be parsed
//	ExitAllocationFailed  = 3  // The requirements do not fit the network
//	ExitConfigError       = 4  // Configuration error
//	ExitPlanNotFound      = 5  // Named plan does not exist
//	ExitTerminalRequired  = 6  // Interactive mode without a TTY
//
// # Allocation Errors
//
// FromVLSM picks the exit code for an error returned by package vlsm:
//
//	res, err := vlsm.Allocate(network, hosts)
//	if err != nil {
//	    return errors.FromVLSM(err)
//	}
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
