/*
Package wallet implements the holder side of offline circulation: building
outgoing transfers and validating incoming notes with only locally
available state.

The controller functions PrepareTransfer and AcceptIncoming are pure and
hold the protocol rules. The Wallet type adds the bookkeeping around them:
a held-note set guarded by a lock, so the check-sign-append-remove sequence
is atomic per note even on a multi-threaded host.

Everything here trusts client-local state (in particular the self-reported
balance). The issuer re-checks all of it authoritatively at reconciliation.
*/
package wallet
