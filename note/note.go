package note

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/errors"
)

// Note is one unit of issued value together with its full provenance. All
// fields except TransferChain are fixed at mint time and covered by the
// issuer signature. TransferChain only ever grows by append, and appends
// happen on copies (see WithHop).
type Note struct {
	ID              string          `json:"noteId"`
	Value           int64           `json:"value"`
	IssuerSignature scrip.Signature `json:"issuerSignature"`
	CreatedAt       time.Time       `json:"createdAt"`
	Expiry          time.Time       `json:"expiry"`
	IssuedTo        scrip.PubKey    `json:"issuedTo"`
	TransferChain   []Hop           `json:"transferChain"`
}

// Hop is one ownership transfer. The signature is by From over the
// transfer sign bytes of (note id, To). Timestamp is advisory only, it is
// not part of the signed message and never used for validation.
type Hop struct {
	From      scrip.PubKey    `json:"from"`
	To        scrip.PubKey    `json:"to"`
	Signature scrip.Signature `json:"signature"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// Validate checks the hop fields are well formed. Signature validity is
// the chain validator's job.
func (h Hop) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "From", h.From.Validate())
	errs = errors.AppendField(errs, "To", h.To.Validate())
	errs = errors.AppendField(errs, "Signature", h.Signature.Validate())
	return errs
}

// Validate checks that all fields are present and well formed. It runs no
// cryptographic checks, so a note that validates may still carry a forged
// signature.
func (n *Note) Validate() error {
	var errs error
	if n.ID == "" {
		errs = errors.AppendField(errs, "NoteID", errors.ErrEmpty)
	}
	if n.Value <= 0 {
		errs = errors.AppendField(errs, "Value", errors.ErrAmount)
	}
	errs = errors.AppendField(errs, "IssuerSignature", n.IssuerSignature.Validate())
	if n.CreatedAt.IsZero() {
		errs = errors.AppendField(errs, "CreatedAt", errors.ErrEmpty)
	}
	if n.Expiry.IsZero() {
		errs = errors.AppendField(errs, "Expiry", errors.ErrEmpty)
	} else if !n.CreatedAt.IsZero() && !n.Expiry.After(n.CreatedAt) {
		errs = errors.AppendField(errs, "Expiry", errors.ErrState)
	}
	errs = errors.AppendField(errs, "IssuedTo", n.IssuedTo.Validate())
	for i, hop := range n.TransferChain {
		errs = errors.Append(errs, errors.Field("TransferChain", hop.Validate(), "hop %d", i))
	}
	return errs
}

// Owner resolves the current owner claimed by the chain: the last hop's To,
// or IssuedTo for an empty chain. It does not verify the chain, use
// VerifyChain when the claim must be trusted.
func (n *Note) Owner() scrip.PubKey {
	if len(n.TransferChain) == 0 {
		return n.IssuedTo
	}
	return n.TransferChain[len(n.TransferChain)-1].To
}

// Expired returns true if the note is past its expiry at the given time.
// A note expiring exactly now is still valid.
func (n *Note) Expired(now time.Time) bool {
	return now.After(n.Expiry)
}

// Copy returns a deep copy of the note.
func (n *Note) Copy() *Note {
	cpy := *n
	cpy.IssuerSignature = append(scrip.Signature(nil), n.IssuerSignature...)
	cpy.IssuedTo = append(scrip.PubKey(nil), n.IssuedTo...)
	cpy.TransferChain = make([]Hop, len(n.TransferChain))
	for i, hop := range n.TransferChain {
		cpy.TransferChain[i] = hop.copy()
	}
	return &cpy
}

func (h Hop) copy() Hop {
	cpy := Hop{
		From:      append(scrip.PubKey(nil), h.From...),
		To:        append(scrip.PubKey(nil), h.To...),
		Signature: append(scrip.Signature(nil), h.Signature...),
	}
	if h.Timestamp != nil {
		ts := *h.Timestamp
		cpy.Timestamp = &ts
	}
	return cpy
}

// WithHop returns a new note with the hop appended. The receiver is left
// untouched, sender and receiver never share chain storage.
func (n *Note) WithHop(h Hop) *Note {
	cpy := n.Copy()
	cpy.TransferChain = append(cpy.TransferChain, h.copy())
	return cpy
}

// Parse decodes the wire representation into a typed note, rejecting
// unknown fields and structurally invalid content before any cryptographic
// check gets to run.
func Parse(raw []byte) (*Note, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var n Note
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformed, "decode: %v", err)
	}
	if dec.More() {
		return nil, errors.Wrap(errors.ErrMalformed, "trailing data")
	}
	if err := n.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return &n, nil
}
