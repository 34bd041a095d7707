package cli

import (
	"io/ioutil"
	"log"

	"github.com/docopt/docopt-go"

	"github.com/gohkp/gohkp/hkp"
	"github.com/gohkp/gohkp/out"
)

func getKeySubcommand(args docopt.Opts, client *hkp.Client) exitCode {
	keyID, err := args.String("<key-id>")
	if err != nil {
		log.Panic(err)
	}

	armoredKey, err := client.Retrieve(keyID)
	if err == hkp.ErrKeyNotFound {
		printFailed("No key found for " + keyID)
		return 1
	}
	if err != nil {
		printFailed("Failed to fetch key: " + err.Error())
		return 1
	}

	filename, _ := args.String("--output")
	if filename != "" {
		if err := ioutil.WriteFile(filename, []byte(armoredKey+"\n"), 0644); err != nil {
			printFailed("Failed to write " + filename + ": " + err.Error())
			return 1
		}
		printSuccess("Wrote key to " + filename)
		return 0
	}

	out.Print(armoredKey + "\n")
	return 0
}
