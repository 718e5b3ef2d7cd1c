/*
Package issuer implements the issuing authority: wallet registration,
minting of signed notes and reconciliation of submitted notes.

All authority state lives in one Ledger value backed by a key-value store:
registered wallets, authoritative issuance records with the last known
owner, a write-once spent set and the note id sequence. Balances are always
recomputed from the ledger's own records, client claims are never trusted.

A single lock per Ledger serializes every operation, which makes the
check-then-set step of redemption indivisible: of two concurrent
redemptions of the same note exactly one wins.
*/
package issuer
