// Package ingest turns raw delimited text lines into candidate user records.
// Parsing and validation are separate steps: ParseLine only checks shape,
// leaving validity to models.User.Validate so callers decide what to keep.
package ingest

import (
	"strconv"
	"strings"

	"roster/internal/directory/models"
	dErrors "roster/pkg/domain-errors"
)

const fieldCount = 3

// ParseLine parses a "NAME, AGE, EMAIL" line into a candidate record. The
// first two commas split the fields; everything after the second comma is the
// email, commas included. Fields are trimmed of surrounding space.
//
// It fails with CodeInvalidInput when fewer than two commas are present or
// the age field is not a base-10 integer. The returned record is NOT
// validated.
func ParseLine(line string) (models.User, error) {
	parts := strings.SplitN(line, ",", fieldCount)
	if len(parts) < fieldCount {
		return models.User{}, dErrors.New(dErrors.CodeInvalidInput, "expected NAME, AGE, EMAIL")
	}

	name := strings.TrimSpace(parts[0])
	ageField := strings.TrimSpace(parts[1])
	email := strings.TrimSpace(parts[2])

	age, err := strconv.Atoi(ageField)
	if err != nil {
		return models.User{}, dErrors.Newf(dErrors.CodeInvalidInput, "age %q is not an integer", ageField)
	}

	return models.NewUser(name, age, email), nil
}
