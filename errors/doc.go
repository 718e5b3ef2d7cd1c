/*
Package errors implements the error handling used across scrip.

Errors are categorized by root errors with unique numeric codes. Reuse a
root from this package when it fits and register package-specific roots
with Register(code, description) otherwise: note takes codes 100-109,
x/wallet 110-119 and x/issuer 120-129.

Create errors with ErrXyz.New("...") or errors.Wrap(err, "...") at the
point of failure so a stack trace is attached. Wrapping multiple times only
records the innermost stack trace.

	%s  prints just the error message
	%+v prints the message with the full stack trace

Test for a category with the root's Is method:

	if issuer.ErrAlreadySpent.Is(err) { ... }
*/
package errors
