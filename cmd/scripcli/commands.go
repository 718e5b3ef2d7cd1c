package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/crypto/bech32"
	"github.com/scripnet/scrip/errors"
	"github.com/scripnet/scrip/note"
	"github.com/scripnet/scrip/x/wallet"
)

// keygenCmd writes a fresh random seed to disk and prints the derived
// public key in both wire (base64) and display (bech32) form.
func keygenCmd(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	out := fs.String("out", "scrip_seed.txt", "file to write the key seed to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return errors.Wrap(err, "read entropy")
	}
	encoded := hex.EncodeToString(seed)
	if err := ioutil.WriteFile(*out, []byte(encoded+"\n"), 0600); err != nil {
		return errors.Wrap(err, "write seed file")
	}

	pub := crypto.PrivKeyFromSeed([]byte(encoded)).PublicKey()
	fmt.Printf("seed written to %s\n", *out)
	fmt.Printf("public key: %s\n", pub)
	fmt.Printf("address:    %s\n", bech32.PubKeyString(pub))
	return nil
}

// showCmd parses a note file, reports its fields and, when the issuer key
// is given, verifies the issuer signature as well as the transfer chain.
func showCmd(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	file := fs.String("note", "", "note file to inspect")
	issuerKey := fs.String("issuer", "", "issuer public key (bech32) to verify the note against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.Wrap(errors.ErrInput, "-note is required")
	}

	raw, err := ioutil.ReadFile(*file)
	if err != nil {
		return errors.Wrap(err, "read note file")
	}
	n, err := note.Parse(raw)
	if err != nil {
		return err
	}

	fmt.Printf("note:    %s\n", n.ID)
	fmt.Printf("value:   %d\n", n.Value)
	fmt.Printf("issued:  %s to %s\n", n.CreatedAt.Format("2006-01-02 15:04:05 MST"), bech32.PubKeyString(n.IssuedTo))
	fmt.Printf("expires: %s\n", n.Expiry.Format("2006-01-02 15:04:05 MST"))
	for i, h := range n.TransferChain {
		fmt.Printf("hop %d:   %s -> %s\n", i+1, bech32.PubKeyString(h.From), bech32.PubKeyString(h.To))
	}

	owner, err := note.VerifyChain(n)
	if err != nil {
		return errors.Wrap(err, "transfer chain")
	}
	fmt.Printf("owner:   %s\n", bech32.PubKeyString(owner))

	if *issuerKey != "" {
		pub, err := bech32.DecodePubKey(*issuerKey)
		if err != nil {
			return errors.Wrap(err, "issuer key")
		}
		if !note.VerifyIssuerSignature(n, pub) {
			return errors.Wrap(note.ErrIssuerSignature, n.ID)
		}
		fmt.Println("issuer signature: OK")
	}
	return nil
}

// transferCmd signs the note in -note over to -to and writes the extended
// note to -out. The original file is left untouched, matching the note's
// copy-on-transfer semantics.
func transferCmd(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	file := fs.String("note", "", "note file to transfer")
	seedFile := fs.String("seed", "", "file holding the sender's key seed")
	to := fs.String("to", "", "recipient public key (bech32)")
	balance := fs.Int64("balance", 0, "sender's current offline balance")
	out := fs.String("out", "", "file to write the transferred note to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for name, v := range map[string]string{"-note": *file, "-seed": *seedFile, "-to": *to, "-out": *out} {
		if v == "" {
			return errors.Wrapf(errors.ErrInput, "%s is required", name)
		}
	}

	raw, err := ioutil.ReadFile(*file)
	if err != nil {
		return errors.Wrap(err, "read note file")
	}
	n, err := note.Parse(raw)
	if err != nil {
		return err
	}

	seed, err := ioutil.ReadFile(*seedFile)
	if err != nil {
		return errors.Wrap(err, "read seed file")
	}
	signer := crypto.PrivKeyFromSeed([]byte(strings.TrimSpace(string(seed))))

	recipient, err := bech32.DecodePubKey(*to)
	if err != nil {
		return errors.Wrap(err, "recipient key")
	}

	transferred, err := wallet.PrepareTransfer(n, signer, recipient, *balance, time.Now())
	if err != nil {
		return err
	}

	bz, err := json.MarshalIndent(transferred, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal note")
	}
	if err := ioutil.WriteFile(*out, append(bz, '\n'), 0644); err != nil {
		return errors.Wrap(err, "write note file")
	}
	fmt.Printf("note %s transferred to %s\n", transferred.ID, bech32.PubKeyString(recipient))
	fmt.Printf("written to %s\n", *out)
	return nil
}
