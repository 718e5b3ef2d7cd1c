/*
Package scrip defines the shared primitives of the scrip offline cash
protocol: wallet identities, signatures, the key-value store contract the
issuer ledger persists to, and the policy constants that holders and the
issuer must agree on.

The actual protocol logic lives in the packages built on top of this one:

  note     the signed note model and the transfer chain validator
  x/wallet the holder-side transfer engine
  x/issuer the issuer ledger (registration, minting, redemption)

crypto wraps the ed25519 signature scheme, store provides a btree-backed
in-memory KVStore, and cmd/scripd exposes the issuer over HTTP.
*/
package scrip
