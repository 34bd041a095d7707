// Package mr parses the machine-readable ("mr") index format that HKP
// keyservers return for op=index lookups, as described in section 5.2 of
// draft-shaw-openpgp-hkp-00.
package mr

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gohkp/gohkp/openpgpdefs/pubkey"
)

// ErrMalformedResponse means the keyserver response didn't follow the
// machine-readable index grammar.
var ErrMalformedResponse = fmt.Errorf("malformed keyserver response")

// ErrUnsupportedEncoding means a user id couldn't be percent-decoded.
var ErrUnsupportedEncoding = fmt.Errorf("unsupported encoding in user id")

// KeyRecord is one key in a keyserver index: the primary key plus the user
// ids listed under it, in the order the server sent them.
type KeyRecord struct {
	PrimaryKey PrimaryKey
	UserIDs    []UserID
}

// PrimaryKey holds the fields of a `pub:` line. Expiration is nil when the
// key doesn't expire. Expired is computed from Expiration against the
// clock at parse time, never read from the server's flags.
type PrimaryKey struct {
	KeyID       string
	AlgorithmID int
	Algorithm   string
	KeyLength   int
	Creation    time.Time
	Expiration  *time.Time
	Expired     bool
	Revoked     bool
	Disabled    bool
}

// UserID holds the fields of a `uid:` line, with the identity text
// percent-decoded.
type UserID struct {
	UserID     string
	Creation   time.Time
	Expiration *time.Time
	Expired    bool
	Revoked    bool
	Disabled   bool
}

// Parse converts a machine-readable index response into key records,
// preserving the server's ordering. Lines that are neither `pub:` nor
// `uid:` (for example `info:` lines) are skipped. An empty response gives
// an empty slice, not an error.
func Parse(response string) ([]KeyRecord, error) {
	return parse(response, time.Now())
}

func parse(response string, now time.Time) ([]KeyRecord, error) {
	records := []KeyRecord{}
	var current *KeyRecord

	for i, line := range strings.Split(response, "\n") {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), ":")

		switch fields[0] {
		case "pub":
			if current != nil {
				records = append(records, *current)
			}
			primaryKey, err := parsePrimaryKey(fields, now)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			current = &KeyRecord{PrimaryKey: primaryKey}

		case "uid":
			if current == nil {
				return nil, fmt.Errorf(
					"line %d: %w: uid with no preceding pub", i+1, ErrMalformedResponse)
			}
			userID, err := parseUserID(fields, now)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			current.UserIDs = append(current.UserIDs, userID)
		}
	}

	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}

// pub:<keyid>:<algo>:<keylen>:<creationdate>:<expirationdate>:<flags>
func parsePrimaryKey(fields []string, now time.Time) (PrimaryKey, error) {
	if len(fields) < 7 {
		return PrimaryKey{}, fmt.Errorf(
			"%w: pub needs 7 fields, got %d", ErrMalformedResponse, len(fields))
	}

	keyID := strings.ToUpper(fields[1])
	if keyID == "" {
		return PrimaryKey{}, fmt.Errorf("%w: empty key id", ErrMalformedResponse)
	}

	algorithmID, err := parseInt(fields[2], "algorithm id")
	if err != nil {
		return PrimaryKey{}, err
	}
	keyLength, err := parseInt(fields[3], "key length")
	if err != nil {
		return PrimaryKey{}, err
	}
	creation, err := parseTimestamp(fields[4])
	if err != nil {
		return PrimaryKey{}, err
	}
	expiration, err := parseOptionalTimestamp(fields[5])
	if err != nil {
		return PrimaryKey{}, err
	}
	flags := fields[6]

	return PrimaryKey{
		KeyID:       keyID,
		AlgorithmID: algorithmID,
		Algorithm:   pubkey.Name(algorithmID),
		KeyLength:   keyLength,
		Creation:    creation,
		Expiration:  expiration,
		Expired:     isExpired(expiration, now),
		Revoked:     strings.ContainsRune(flags, 'r'),
		Disabled:    strings.ContainsRune(flags, 'd'),
	}, nil
}

// uid:<escaped uid string>:<creationdate>:<expirationdate>:<flags>
//
// The identity text is percent-encoded but some servers leave colons in it
// unescaped, so the trailing three fields are taken from the right and the
// middle re-joined.
func parseUserID(fields []string, now time.Time) (UserID, error) {
	if len(fields) < 5 {
		return UserID{}, fmt.Errorf(
			"%w: uid needs 5 fields, got %d", ErrMalformedResponse, len(fields))
	}

	n := len(fields)
	decoded, err := url.PathUnescape(strings.Join(fields[1:n-3], ":"))
	if err != nil {
		return UserID{}, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, err)
	}

	creation, err := parseTimestamp(fields[n-3])
	if err != nil {
		return UserID{}, err
	}
	expiration, err := parseOptionalTimestamp(fields[n-2])
	if err != nil {
		return UserID{}, err
	}
	flags := fields[n-1]

	return UserID{
		UserID:     decoded,
		Creation:   creation,
		Expiration: expiration,
		Expired:    isExpired(expiration, now),
		Revoked:    strings.ContainsRune(flags, 'r'),
		Disabled:   strings.ContainsRune(flags, 'd'),
	}, nil
}

func parseInt(field string, name string) (int, error) {
	if field == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s '%s'", ErrMalformedResponse, name, field)
	}
	return value, nil
}

// parseTimestamp converts a unix epoch field into a UTC time. An empty
// field gives the zero time.
func parseTimestamp(field string) (time.Time, error) {
	if field == "" {
		return time.Time{}, nil
	}
	epoch, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"%w: bad timestamp '%s'", ErrMalformedResponse, field)
	}
	return time.Unix(epoch, 0).UTC(), nil
}

// parseOptionalTimestamp is parseTimestamp for fields where an empty or
// "0" value means "not set".
func parseOptionalTimestamp(field string) (*time.Time, error) {
	if field == "" || field == "0" {
		return nil, nil
	}
	timestamp, err := parseTimestamp(field)
	if err != nil {
		return nil, err
	}
	return &timestamp, nil
}

func isExpired(expiration *time.Time, now time.Time) bool {
	return expiration != nil && !expiration.After(now)
}
