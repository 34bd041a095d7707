package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/docopt/docopt-go"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/gohkp/gohkp/config"
	"github.com/gohkp/gohkp/hkp"
	"github.com/gohkp/gohkp/out"
)

// Version of the gohkp command.
const Version = "0.1.0"

type exitCode = int

// Main is the entry point to the `gohkp` command.
func Main() exitCode {
	usage := fmt.Sprintf(`gohkp %s

Search, fetch and submit OpenPGP keys on HKP keyservers.

Usage:
	gohkp search <query> [--exact] [--keyserver=<host>] [--port=<port>]
	gohkp get <key-id> [--output=<filename>] [--keyserver=<host>] [--port=<port>]
	gohkp send <filename> [--keyserver=<host>] [--port=<port>]

Options:
	-h --help             Show this screen
	   --exact            Only return keys matching the query exactly
	   --output=<filename>  Write the fetched key to a file instead of stdout
	   --keyserver=<host>   Keyserver to talk to, overriding the config file
	   --port=<port>        Keyserver port, overriding the config file`,
		Version)

	args, _ := docopt.ParseDoc(usage)

	client, err := makeClient(args)
	if err != nil {
		printFailed(err.Error())
		return 1
	}

	var code exitCode

	switch getSubcommand(args, []string{"search", "get", "send"}) {
	case "search":
		code = searchSubcommand(args, client)

	case "get":
		code = getKeySubcommand(args, client)

	case "send":
		code = sendSubcommand(args, client)

	default:
		out.Print("unhandled subcommand\n")
		code = 1
	}

	return code
}

func getSubcommand(args docopt.Opts, subcommands []string) string {
	for _, subcommand := range subcommands {
		value, err := args.Bool(subcommand)
		if err != nil {
			log.Panic(err)
		}
		if value {
			return subcommand
		}
	}
	log.Panicf("expected a subcommand, got none: %v", args)
	return ""
}

// makeClient builds an hkp.Client from the config file, with the
// --keyserver and --port arguments taking precedence.
func makeClient(args docopt.Opts) (*hkp.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	host := cfg.KeyserverHost()
	if hostArg, _ := args.String("--keyserver"); hostArg != "" {
		host = hostArg
	}

	port := cfg.KeyserverPort()
	if portArg, _ := args.String("--port"); portArg != "" {
		parsedPort, err := strconv.Atoi(portArg)
		if err != nil {
			return nil, fmt.Errorf("bad --port '%s': %v", portArg, err)
		}
		port = parsedPort
	}

	return hkp.New(host, port)
}

func loadConfig() (*config.Config, error) {
	directory, err := getGohkpDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to get gohkp directory: %v", err)
	}
	return config.Load(directory)
}

func getGohkpDirectory() (string, error) {
	dirFromEnv := os.Getenv("GOHKP_DIR")

	if dirFromEnv != "" {
		return dirFromEnv, nil
	}

	homeDirectory, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	gohkpDir := filepath.Join(homeDirectory, ".config", "gohkp")
	if err := os.MkdirAll(gohkpDir, 0700); err != nil {
		return "", err
	}
	return gohkpDir, nil
}
