// Package config provides configuration types and loading for vlsm-ctl.
//
// # Configuration Files
//
// All files are TOML and live under one directory, resolved in order from
// --config-dir, $VLSM_CTL_CONFIG_DIR, and os.UserConfigDir()/vlsm-ctl:
//
//   - config.toml: user defaults
//   - plans/*.toml: named inputs for the allocator
//
// # Config
//
//	default_network = "192.168.1.0/24" # prefilled in the form
//	default_hosts   = [100, 50, 20]
//	format          = "table"          # table, json or yaml
//
// A missing config.toml is not an error; every field has a default.
// Keys the loader does not know are reported in Config.Undecoded.
//
// # Plans
//
// A plan stores the two allocator inputs under a name:
//
//	name        = "office"
//	description = "Branch office VLANs"
//	network     = "10.20.0.0/22"
//	hosts       = [240, 120, 60, 12]
//
// Plan names follow the same rules everywhere (lowercase, digits, '-' and
// '_', at most 63 characters). Plan paths are joined with securejoin so a
// name can never resolve outside the plans directory.
//
// # Validation
//
// Config and Plan implement Validate(), which runs the real vlsm parsers on
// their network and host values. Loading functions validate after parsing.
package config
