package main

import (
	"flag"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/tendermint/tmlibs/log"

	"github.com/scripnet/scrip/crypto"
	"github.com/scripnet/scrip/crypto/bech32"
	"github.com/scripnet/scrip/store"
	"github.com/scripnet/scrip/x/issuer"
)

var (
	flagAddr = flag.String("addr", ":8545", "address the issuer API listens on")
	flagSeed = flag.String("seed", "", "file holding the issuer key seed; a fresh random key is used when empty")
)

func main() {
	flag.Parse()

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "scripd")

	signer, err := loadSigner(*flagSeed)
	if err != nil {
		logger.Error("cannot load issuer key", "err", err)
		os.Exit(1)
	}

	ledger := issuer.NewLedger(store.NewMemStore(), signer)
	srv := newServer(ledger, logger)

	r := mux.NewRouter()
	r.HandleFunc("/wallets", srv.registerHandler).Methods("POST")
	r.HandleFunc("/mint", srv.mintHandler).Methods("POST")
	r.HandleFunc("/redeem", srv.redeemHandler).Methods("POST")
	r.HandleFunc("/balance", srv.balanceHandler).Methods("GET")

	logger.Info("issuer ready",
		"addr", *flagAddr,
		"issuer", bech32.PubKeyString(ledger.IssuerKey()))
	if err := http.ListenAndServe(*flagAddr, r); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// loadSigner derives the issuer key from the seed file, so restarts keep
// the same identity. Without a seed file every start mints under a new
// key, useful only for local experiments.
func loadSigner(path string) (crypto.Signer, error) {
	if path == "" {
		return crypto.GenPrivKey(), nil
	}
	seed, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return crypto.PrivKeyFromSeed([]byte(strings.TrimSpace(string(seed)))), nil
}
