package apimodels

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one object of a json listing, kept as opaque key/value pairs.
type Record map[string]string

// RecordSet is a json listing keyed by object identifier.
type RecordSet map[string]Record

func (r Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s RecordSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DecodeRecordSet decodes a json listing. Values that are not strings are
// kept in their json text form.
func DecodeRecordSet(body []byte) (RecordSet, error) {
	if isEmptyArray(body) {
		return RecordSet{}, nil
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "error decoding listing")
	}

	result := make(RecordSet, len(raw))
	for id, fields := range raw {
		if fields == nil {
			continue
		}
		record := make(Record, len(fields))
		for key, value := range fields {
			record[key] = rawToString(value)
		}
		result[id] = record
	}

	return result, nil
}

// DecodeRecord decodes a flat json object.
func DecodeRecord(body []byte) (Record, error) {
	if isEmptyArray(body) {
		return Record{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "error decoding object")
	}

	record := make(Record, len(raw))
	for key, value := range raw {
		record[key] = rawToString(value)
	}

	return record, nil
}

func rawToString(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(value, &n); err == nil {
		return n.String()
	}

	var b bool
	if err := json.Unmarshal(value, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return string(value)
}

// isEmptyArray matches the "[]" an empty listing is encoded as.
func isEmptyArray(body []byte) bool {
	return strings.TrimSpace(string(body)) == "[]"
}
