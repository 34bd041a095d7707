package cli

import (
	"io/ioutil"
	"log"

	"github.com/docopt/docopt-go"

	"github.com/gohkp/gohkp/armorutil"
	"github.com/gohkp/gohkp/hkp"
)

func sendSubcommand(args docopt.Opts, client *hkp.Client) exitCode {
	filename, err := args.String("<filename>")
	if err != nil {
		log.Panic(err)
	}

	keyData, err := ioutil.ReadFile(filename)
	if err != nil {
		printFailed("Failed to read " + filename + ": " + err.Error())
		return 1
	}
	armoredKey := string(keyData)

	if err := armorutil.CheckPublicKey(armoredKey); err != nil {
		printFailed(filename + " doesn't look like an armored public key: " + err.Error())
		return 1
	}

	if err := client.Submit(armoredKey); err != nil {
		printFailed("Keyserver rejected the key: " + err.Error())
		return 1
	}

	printSuccess("Key accepted by the keyserver")
	return 0
}
