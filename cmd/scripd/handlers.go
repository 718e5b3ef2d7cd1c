package main

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/tendermint/tmlibs/log"

	"github.com/scripnet/scrip"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
	"github.com/scripnet/scrip/x/issuer"
)

type server struct {
	ledger *issuer.Ledger
	logger log.Logger
}

func newServer(ledger *issuer.Ledger, logger log.Logger) *server {
	return &server{ledger: ledger, logger: logger}
}

type registerRequest struct {
	PublicKey scrip.PubKey `json:"publicKey"`
}

func (s *server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.Register(req.PublicKey); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("wallet registered", "wallet", req.PublicKey)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

type mintRequest struct {
	PublicKey scrip.PubKey `json:"publicKey"`
	Amount    int64        `json:"amount"`
}

func (s *server) mintHandler(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, err)
		return
	}
	n, err := s.ledger.Mint(req.PublicKey, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("note minted", "note", n.ID, "value", n.Value, "wallet", req.PublicKey)
	writeJSON(w, http.StatusCreated, n)
}

type redeemRequest struct {
	Depositor scrip.PubKey      `json:"depositor"`
	Notes     []json.RawMessage `json:"notes"`
}

type redeemResult struct {
	NoteID string `json:"noteId,omitempty"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func (s *server) redeemHandler(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// Strict parsing up front: a malformed note in the batch is rejected
	// on its own, exactly like a forged one, without blocking the rest.
	parsed := make([]*note.Note, len(req.Notes))
	parseErrs := make([]error, len(req.Notes))
	for i, raw := range req.Notes {
		parsed[i], parseErrs[i] = note.Parse(raw)
	}

	results := s.ledger.Redeem(req.Depositor, parsed)

	out := make([]redeemResult, len(results))
	for i, res := range results {
		err := res.Err
		if parseErrs[i] != nil {
			err = parseErrs[i]
		}
		if err == nil {
			out[i] = redeemResult{NoteID: res.NoteID, Status: "redeemed"}
		} else {
			out[i] = redeemResult{NoteID: res.NoteID, Status: "rejected", Reason: err.Error()}
		}
	}
	s.logger.Info("redeem batch processed", "depositor", req.Depositor, "notes", len(out))
	writeJSON(w, http.StatusOK, map[string][]redeemResult{"results": out})
}

func (s *server) balanceHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("publicKey")
	pub, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrInput, "publicKey is not base64"))
		return
	}
	balance, err := s.ledger.Balance(scrip.PubKey(pub))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"balance": balance})
}

func decodeStrict(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrapf(errors.ErrMalformed, "decode request: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.Code(err)
	writeJSON(w, httpStatus(code), map[string]errorBody{
		"error": {Code: code, Message: err.Error()},
	})
}

// httpStatus maps ledger error codes onto HTTP statuses. Structural and
// ownership failures are unprocessable entities rather than bad requests:
// the request was well formed, the note inside it was not acceptable.
func httpStatus(code uint32) int {
	switch code {
	case errors.ErrMalformed.Code(), errors.ErrInput.Code(), errors.ErrAmount.Code(), errors.ErrEmpty.Code():
		return http.StatusBadRequest
	case errors.ErrNotFound.Code(), issuer.ErrUnknownNote.Code():
		return http.StatusNotFound
	case errors.ErrDuplicate.Code(), issuer.ErrAlreadySpent.Code():
		return http.StatusConflict
	case issuer.ErrUnregisteredWallet.Code():
		return http.StatusForbidden
	case errors.ErrExpired.Code():
		return http.StatusGone
	case errors.ErrUnauthorized.Code():
		return http.StatusUnprocessableEntity
	}
	if code >= 100 && code <= 129 {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
