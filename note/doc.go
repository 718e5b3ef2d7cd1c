/*
Package note implements the value-bearing note model and the transfer chain
validator.

A Note is an immutable value: the only mutation it ever sees is appending a
hop, and that is expressed as a copy-on-append returning a new Note value.
Validation is split in two independent, side effect free checks that
callers combine as needed:

  VerifyChain           structural and cryptographic integrity of the hop
                        chain, resolving the current owner
  VerifyIssuerSignature authenticity of the mint fields

Both operate on local data only. Ledger state (double spend bookkeeping,
authoritative issuance records) is x/issuer's concern.
*/
package note
