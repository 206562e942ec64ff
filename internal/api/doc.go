// Package api is the transport boundary of realworld-tui.
//
// It owns the three things no other package may touch: the credential
// token, the HTTP client, and the mapping of every failure mode into the
// displayable [Errors] list. The rest of the application sees only passive
// [Descriptor] values (built by the endpoint constructors here) and the
// [Sender] interface that executes them.
package api
