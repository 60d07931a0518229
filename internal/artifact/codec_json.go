package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"

	"workoutgen/internal/program"
)

// EncodeJSON renders p as nested objects keyed "1".."N" then "1".."7", in
// numeric order, indented by two spaces with ": " after names. Non-ASCII and
// HTML characters are written literally and no trailing newline is emitted.
func EncodeJSON(p program.Program) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf,
		jsontext.WithIndent("  "),
		jsontext.SpaceAfterColon(true),
	)

	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, wrap(ErrSerialization, "encode json", "", err)
	}
	for i, week := range p.Weeks {
		if err := enc.WriteToken(jsontext.String(program.WeekKey(i + 1))); err != nil {
			return nil, wrap(ErrSerialization, "encode json", "", err)
		}
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return nil, wrap(ErrSerialization, "encode json", "", err)
		}
		for _, day := range program.Days() {
			if err := enc.WriteToken(jsontext.String(day.Key())); err != nil {
				return nil, wrap(ErrSerialization, "encode json", "", err)
			}
			if err := enc.WriteToken(jsontext.String(string(week.Entry(day)))); err != nil {
				return nil, wrap(ErrSerialization, "encode json",
					"", fmt.Errorf("week %d %s: %w", i+1, day, err))
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return nil, wrap(ErrSerialization, "encode json", "", err)
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, wrap(ErrSerialization, "encode json", "", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DecodeJSON parses a JSON artifact. Week keys may appear in any order but
// must form the contiguous range 1..N; each week must hold exactly the seven
// day keys with string values. Duplicate names are rejected.
func DecodeJSON(data []byte) (program.Program, error) {
	p, err := decodeJSON(jsontext.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return program.Program{}, wrap(ErrSerialization, "decode json", "", err)
	}
	return p, nil
}

func decodeJSON(dec *jsontext.Decoder) (program.Program, error) {
	if err := expectKind(dec, '{'); err != nil {
		return program.Program{}, err
	}
	weeks := map[int]program.WeekPlan{}
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return program.Program{}, err
		}
		n, err := program.ParseWeekKey(tok.String())
		if err != nil {
			return program.Program{}, err
		}
		week, err := decodeWeek(dec, n)
		if err != nil {
			return program.Program{}, err
		}
		weeks[n] = week
	}
	if err := expectKind(dec, '}'); err != nil {
		return program.Program{}, err
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return program.Program{}, fmt.Errorf("trailing data after artifact")
	}
	return assemble(weeks)
}

func decodeWeek(dec *jsontext.Decoder, n int) (program.WeekPlan, error) {
	var week program.WeekPlan
	if err := expectKind(dec, '{'); err != nil {
		return week, fmt.Errorf("week %d: %w", n, err)
	}
	days := dayTracker{week: n}
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return week, err
		}
		key := name.String()
		day, err := days.add(key)
		if err != nil {
			return week, err
		}
		if dec.PeekKind() != '"' {
			return week, fmt.Errorf("week %d day %s: value must be a string", n, key)
		}
		value, err := dec.ReadToken()
		if err != nil {
			return week, err
		}
		week = week.With(day, program.DayEntry(value.String()))
	}
	if err := expectKind(dec, '}'); err != nil {
		return week, err
	}
	return week, days.complete()
}

func expectKind(dec *jsontext.Decoder, want jsontext.Kind) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != want {
		return fmt.Errorf("expected %v, found %v", want, tok.Kind())
	}
	return nil
}
