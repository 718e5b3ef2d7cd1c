package main

import (
	"flag"
	"fmt"
	"os"
)

func helpMessage() {
	fmt.Println("scripcli")
	fmt.Println("        Holder-side tooling for offline scrip notes")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("keygen    Generate a wallet key and write its seed to a file")
	fmt.Println("show      Inspect a note file and verify its chain")
	fmt.Println("transfer  Sign a note over to a recipient")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "keygen":
		err = keygenCmd(rest)
	case "show":
		err = showCmd(rest)
	case "transfer":
		err = transferCmd(rest)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
