// Package cli implements the calcreg command-line tool for inspecting the
// calculator registry.
//
// # Commands
//
// list - Show registered calculator names:
//
//	calcreg list [--format yaml|json|table] [--output FILE]
//
// Lists every key in the calculator registry, fully-qualified names and
// short aliases alike, together with the allowlisted top namespaces.
//
// check - Verify a calculator is registered:
//
//	calcreg check mediapipe.PassThroughCalculator
//
// Exits non-zero when the name is not registered.
//
// run - Construct calculators by name and push packets through them:
//
//	calcreg run --calculator PassThroughCalculator --calculator PacketCounterCalculator --packets 3
//	calcreg run --calculator mediapipe.ConstantCalculator --param value=42
//
// Outputs are serialized like list output. Counter values are printed to
// stderr and published to the structured log once the run completes.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
package cli
