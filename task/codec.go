package task

import (
	"strconv"
	"strings"
)

const (
	// Header is the first line of every storage file.
	Header = "id,name,completed,deleted,createdAt,completedAt,deletedAt"

	// CommaToken stands in for a comma inside an encoded name.
	CommaToken = "<@^_fake_comma_$#>"

	// NewlineToken stands in for a newline inside an encoded name.
	NewlineToken = "<@^_fake_newline_$#>"

	delimiter  = ","
	fieldCount = 7
)

// Names containing either token do not round-trip. ValidateName rejects them.
var (
	nameEscaper   = strings.NewReplacer(delimiter, CommaToken, "\n", NewlineToken)
	nameUnescaper = strings.NewReplacer(CommaToken, delimiter, NewlineToken, "\n")
)

// Encode renders t as a single record line without a trailing newline.
func Encode(t Task) string {
	fields := []string{
		strconv.FormatUint(uint64(t.ID), 10),
		nameEscaper.Replace(t.Name),
		strconv.FormatBool(t.Completed),
		strconv.FormatBool(t.Deleted),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.CompletedAt),
		formatTimestamp(t.DeletedAt),
	}
	return strings.Join(fields, delimiter)
}

// Decode parses a record line produced by Encode.
func Decode(line string) (Task, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != fieldCount {
		return Task{}, &DecodeError{Kind: FieldCount, Got: len(fields)}
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Task{}, invalidField("id", err)
	}

	completed, err := parseBool(fields[2])
	if err != nil {
		return Task{}, invalidField("completed", err)
	}
	deleted, err := parseBool(fields[3])
	if err != nil {
		return Task{}, invalidField("deleted", err)
	}

	createdAt, err := parseTimestamp(fields[4])
	if err != nil {
		return Task{}, invalidField("created_at", err)
	}
	completedAt, err := parseTimestamp(fields[5])
	if err != nil {
		return Task{}, invalidField("completed_at", err)
	}
	deletedAt, err := parseTimestamp(fields[6])
	if err != nil {
		return Task{}, invalidField("deleted_at", err)
	}

	return Task{
		ID:          uint32(id),
		Name:        nameUnescaper.Replace(fields[1]),
		Completed:   completed,
		Deleted:     deleted,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
		DeletedAt:   deletedAt,
	}, nil
}

func invalidField(field string, err error) error {
	return &DecodeError{Kind: InvalidField, Field: field, Err: err}
}

// parseBool accepts only the forms strconv.FormatBool produces.
func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &strconv.NumError{Func: "ParseBool", Num: value, Err: strconv.ErrSyntax}
	}
}

func formatTimestamp(ts *int64) string {
	if ts == nil {
		return ""
	}
	return strconv.FormatInt(*ts, 10)
}

func parseTimestamp(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
