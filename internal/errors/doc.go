// Package errors provides the structured error type used across the arena.
//
// The battle simulation itself has no recoverable-error taxonomy: every state
// transition is total and gameplay failures (such as running out of MP) are
// reported as log entries. Errors only appear at the edges:
//   - Config validation when constructing orchestrators and services
//   - Caller precondition violations (negative tick delta, ticking after quit)
//   - Malformed input scripts in the CLI
//
// # Basic Usage
//
//	err := errors.InvalidArgument("delta must not be negative")
//	err := errors.FailedPreconditionf("battle %s is not running", id)
//
// Adding metadata:
//
//	err := errors.InvalidArgumentf("unknown command %q", cmd).
//	    WithMeta("line", lineNo)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := cfg.Validate(); err != nil {
//	    return nil, errors.Wrap(err, "invalid config")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if c.EventBus == nil {
//	    vb.RequiredField("EventBus")
//	}
//	return vb.Build()
package errors
