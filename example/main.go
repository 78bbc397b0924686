package main

import (
	"fmt"
	"log"

	"github.com/not-for-prod/hdwallet/cointype"
	"github.com/not-for-prod/hdwallet/hdwallet"
)

func main() {
	// Generate a 12-word mnemonic (128 bits entropy) and the wallet it seeds.
	w, err := hdwallet.New(128, "", false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Mnemonic: %s\n", w.Mnemonic())

	// Derive the first TRON receiving key: m/44'/195'/0'/0/0.
	master, err := hdwallet.MasterKeyFromSeed(w.Seed(), false)
	if err != nil {
		log.Fatal(err)
	}
	child, err := hdwallet.DeriveKeyFromPath(master, cointype.Tron, 0, 0, 0)
	if err != nil {
		log.Fatal(err)
	}

	privateKey := child.Key
	publicKey := privateKey.GeneratePublicKey()

	address := hdwallet.TronAddress(publicKey)
	fmt.Printf("TRON Address: %s\n", address)
	fmt.Printf("Private Key (WIF): %s\n", privateKey.ToWIF())
	fmt.Printf("Public Key: %x\n", publicKey.SerializeCompressed())
}
