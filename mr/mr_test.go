package mr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gohkp/gohkp/assert"
)

var (
	// 2001-09-09 01:46:40 UTC, the epoch timestamp used in fixtures below
	exampleCreation = time.Date(2001, 9, 9, 1, 46, 40, 0, time.UTC)

	beforeExpiration = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	afterExpiration  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestParse(t *testing.T) {
	t.Run("with a single key and user id", func(t *testing.T) {
		records, err := parse(
			"pub:ABCD1234:1:2048:1000000000:0:\n"+
				"uid:Alice%20%3Calice%40example.com%3E:1000000000::\n",
			afterExpiration)
		assert.NoError(t, err)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}

		primaryKey := records[0].PrimaryKey
		assert.Equal(t, "ABCD1234", primaryKey.KeyID)
		assert.Equal(t, 1, primaryKey.AlgorithmID)
		assert.Equal(t, "RSA Encrypt or Sign", primaryKey.Algorithm)
		assert.Equal(t, 2048, primaryKey.KeyLength)
		assert.Equal(t, exampleCreation, primaryKey.Creation)
		if primaryKey.Expiration != nil {
			t.Fatalf("expected no expiration, got %v", *primaryKey.Expiration)
		}
		assert.Equal(t, false, primaryKey.Expired)
		assert.Equal(t, false, primaryKey.Revoked)
		assert.Equal(t, false, primaryKey.Disabled)

		if len(records[0].UserIDs) != 1 {
			t.Fatalf("expected 1 user id, got %d", len(records[0].UserIDs))
		}
		userID := records[0].UserIDs[0]
		assert.Equal(t, "Alice <alice@example.com>", userID.UserID)
		assert.Equal(t, exampleCreation, userID.Creation)
		if userID.Expiration != nil {
			t.Fatalf("expected no expiration, got %v", *userID.Expiration)
		}
	})

	t.Run("with empty input", func(t *testing.T) {
		records, err := Parse("")
		assert.NoError(t, err)
		assert.Equal(t, 0, len(records))
	})

	t.Run("groups user ids under the preceding pub line", func(t *testing.T) {
		records, err := Parse(
			"info:1:2\n" +
				"pub:AAAA1111:1:2048:1000000000::\n" +
				"uid:First%20%3Cfirst%40example.com%3E:1000000000::\n" +
				"uid:Second%20%3Csecond%40example.com%3E:1000000000::\n" +
				"pub:BBBB2222:17:1024:1000000000::\n" +
				"uid:Third%20%3Cthird%40example.com%3E:1000000000::\n")
		assert.NoError(t, err)

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		assert.Equal(t, "AAAA1111", records[0].PrimaryKey.KeyID)
		assert.Equal(t, 2, len(records[0].UserIDs))
		assert.Equal(t, "BBBB2222", records[1].PrimaryKey.KeyID)
		assert.Equal(t, "DSA", records[1].PrimaryKey.Algorithm)
		assert.Equal(t, 1, len(records[1].UserIDs))
	})

	t.Run("with a key and no user ids", func(t *testing.T) {
		records, err := Parse("pub:AAAA1111:1:2048:1000000000::\n")
		assert.NoError(t, err)

		assert.Equal(t, 1, len(records))
		assert.Equal(t, 0, len(records[0].UserIDs))
	})

	t.Run("tolerates CRLF line endings", func(t *testing.T) {
		records, err := Parse(
			"pub:AAAA1111:1:2048:1000000000::\r\n" +
				"uid:Alice:1000000000::\r\n")
		assert.NoError(t, err)

		assert.Equal(t, 1, len(records))
		assert.Equal(t, "Alice", records[0].UserIDs[0].UserID)
	})

	t.Run("upper-cases the key id", func(t *testing.T) {
		records, err := Parse("pub:abcd1234efab5678:1:2048:1000000000::\n")
		assert.NoError(t, err)

		assert.Equal(t, "ABCD1234EFAB5678", records[0].PrimaryKey.KeyID)
	})

	t.Run("keeps unescaped colons in the user id text", func(t *testing.T) {
		records, err := Parse(
			"pub:AAAA1111:1:2048:1000000000::\n" +
				"uid:Alice (role: admin) %3Calice%40example.com%3E:1000000000::\n")
		assert.NoError(t, err)

		assert.Equal(t,
			"Alice (role: admin) <alice@example.com>",
			records[0].UserIDs[0].UserID)
	})

	t.Run("treats an empty key length as zero", func(t *testing.T) {
		records, err := Parse("pub:AAAA1111:1::1000000000::\n")
		assert.NoError(t, err)

		assert.Equal(t, 0, records[0].PrimaryKey.KeyLength)
	})
}

func TestParseFlags(t *testing.T) {
	var tests = []struct {
		flags            string
		expectedRevoked  bool
		expectedDisabled bool
	}{
		{"", false, false},
		{"r", true, false},
		{"d", false, true},
		{"rd", true, true},
		{"dr", true, true},
		{"e", false, false},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("for flags '%s'", test.flags), func(t *testing.T) {
			records, err := parse(
				fmt.Sprintf("pub:AAAA1111:1:2048:1000000000::%s\n"+
					"uid:Alice:1000000000::%s\n", test.flags, test.flags),
				beforeExpiration)
			assert.NoError(t, err)

			primaryKey := records[0].PrimaryKey
			assert.Equal(t, test.expectedRevoked, primaryKey.Revoked)
			assert.Equal(t, test.expectedDisabled, primaryKey.Disabled)

			userID := records[0].UserIDs[0]
			assert.Equal(t, test.expectedRevoked, userID.Revoked)
			assert.Equal(t, test.expectedDisabled, userID.Disabled)
		})
	}
}

func TestParseExpired(t *testing.T) {
	// expires 2020-01-01 00:00:00 UTC
	const response = "pub:AAAA1111:1:2048:1000000000:1577836800:\n" +
		"uid:Alice:1000000000:1577836800:\n"

	expiration := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("is false before the expiration time", func(t *testing.T) {
		records, err := parse(response, beforeExpiration)
		assert.NoError(t, err)

		assert.Equal(t, false, records[0].PrimaryKey.Expired)
		assert.Equal(t, false, records[0].UserIDs[0].Expired)
	})

	t.Run("is true after the expiration time", func(t *testing.T) {
		records, err := parse(response, afterExpiration)
		assert.NoError(t, err)

		assert.Equal(t, expiration, *records[0].PrimaryKey.Expiration)
		assert.Equal(t, true, records[0].PrimaryKey.Expired)
		assert.Equal(t, true, records[0].UserIDs[0].Expired)
	})

	t.Run("is true exactly at the expiration time", func(t *testing.T) {
		records, err := parse(response, expiration)
		assert.NoError(t, err)

		assert.Equal(t, true, records[0].PrimaryKey.Expired)
	})

	t.Run("ignores the e flag: expired is computed, not flag-sourced", func(t *testing.T) {
		records, err := parse(
			"pub:AAAA1111:1:2048:1000000000::e\n", beforeExpiration)
		assert.NoError(t, err)

		assert.Equal(t, false, records[0].PrimaryKey.Expired)
	})

	t.Run("treats a zero expiration field as no expiration", func(t *testing.T) {
		records, err := parse(
			"pub:AAAA1111:1:2048:1000000000:0:\n", afterExpiration)
		assert.NoError(t, err)

		if records[0].PrimaryKey.Expiration != nil {
			t.Fatalf("expected no expiration, got %v", *records[0].PrimaryKey.Expiration)
		}
		assert.Equal(t, false, records[0].PrimaryKey.Expired)
	})
}

func TestParseMalformedResponse(t *testing.T) {
	var tests = []struct {
		name     string
		response string
	}{
		{"uid line with no preceding pub line", "uid:orphan::\n"},
		{"pub line with too few fields", "pub:AAAA1111:1:2048\n"},
		{"uid line with too few fields", "pub:AAAA1111:1:2048:1000000000::\nuid:Alice:\n"},
		{"pub line with an empty key id", "pub::1:2048:1000000000::\n"},
		{"pub line with a bad algorithm id", "pub:AAAA1111:one:2048:1000000000::\n"},
		{"pub line with a bad key length", "pub:AAAA1111:1:big:1000000000::\n"},
		{"pub line with a bad creation date", "pub:AAAA1111:1:2048:yesterday::\n"},
		{"pub line with a bad expiration date", "pub:AAAA1111:1:2048:1000000000:never:\n"},
		{"uid line with a bad creation date", "pub:AAAA1111:1:2048:1000000000::\nuid:Alice:yesterday::\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.response)
			assert.GotError(t, err)

			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got '%v'", err)
			}
		})
	}
}

func TestParseUnsupportedEncoding(t *testing.T) {
	_, err := Parse(
		"pub:AAAA1111:1:2048:1000000000::\n" +
			"uid:Alice%ZZ:1000000000::\n")
	assert.GotError(t, err)

	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got '%v'", err)
	}
}
