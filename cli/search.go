package cli

import (
	"fmt"
	"log"

	"github.com/docopt/docopt-go"

	"github.com/gohkp/gohkp/colour"
	"github.com/gohkp/gohkp/hkp"
	"github.com/gohkp/gohkp/mr"
	"github.com/gohkp/gohkp/out"
)

func searchSubcommand(args docopt.Opts, client *hkp.Client) exitCode {
	query, err := args.String("<query>")
	if err != nil {
		log.Panic(err)
	}
	exact, _ := args.Bool("--exact")

	var records []mr.KeyRecord
	if exact {
		records, err = client.SearchExact(query)
	} else {
		records, err = client.Search(query)
	}
	if err != nil {
		printFailed("Search failed: " + err.Error())
		return 1
	}

	if len(records) == 0 {
		out.Print("No keys found.\n")
		return 0
	}

	for _, record := range records {
		out.Print(formatKeyRecord(record))
	}
	return 0
}

// formatKeyRecord lays out one key roughly the way gpg --list-keys does:
//
//	pub   4096/309F635DAD1B5517  RSA Encrypt or Sign  created 2013-12-19
//	      uid  Paul Michael Furley <paul@paulfurley.com>
func formatKeyRecord(record mr.KeyRecord) string {
	primaryKey := record.PrimaryKey

	line := fmt.Sprintf("pub   %d/%s  %s  created %s",
		primaryKey.KeyLength,
		primaryKey.KeyID,
		primaryKey.Algorithm,
		primaryKey.Creation.Format("2006-01-02"),
	)
	for _, marker := range statusMarkers(
		primaryKey.Revoked, primaryKey.Disabled, primaryKey.Expired) {
		line += "  " + marker
	}
	line += "\n"

	for _, userID := range record.UserIDs {
		line += "      uid  " + userID.UserID
		for _, marker := range statusMarkers(
			userID.Revoked, userID.Disabled, userID.Expired) {
			line += "  " + marker
		}
		line += "\n"
	}

	return line + "\n"
}

func statusMarkers(revoked bool, disabled bool, expired bool) []string {
	var markers []string
	if revoked {
		markers = append(markers, colour.Failure("[revoked]"))
	}
	if disabled {
		markers = append(markers, colour.Warning("[disabled]"))
	}
	if expired {
		markers = append(markers, colour.Warning("[expired]"))
	}
	return markers
}
