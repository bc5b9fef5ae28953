// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package codec serializes configuration payloads as JSON text and as a
// base64 transport encoding safe for secret-store value fields.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

// Payload is an arbitrary JSON value: objects decode to map[string]any,
// arrays to []any, and numbers to json.Number so that parse/serialize
// round-trips without loss.
type Payload = any

// Serialize renders a payload as UTF-8 JSON text.
func Serialize(payload Payload) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.EncodingError("payload is not representable as JSON", err)
	}
	return data, nil
}

// Deserialize parses exactly one JSON document.
func Deserialize(data []byte) (Payload, error) {
	if !utf8.Valid(data) {
		return nil, errors.DecodingError("content is not valid UTF-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, errors.DecodingError("content is not valid JSON", err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, errors.DecodingError(fmt.Sprintf("trailing data after JSON document: %v", tok), nil)
	}
	return payload, nil
}

// EncodeForTransport serializes a payload and base64-encodes the result.
func EncodeForTransport(payload Payload) (string, error) {
	data, err := Serialize(payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeTransport reverses the base64 layer only, returning the stored
// JSON serialization verbatim.
func DecodeTransport(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.DecodingError("content is not valid base64", err)
	}
	return data, nil
}

// DecodeFromTransport reverses EncodeForTransport: base64-decode, then
// parse the JSON serialization.
func DecodeFromTransport(encoded string) (Payload, error) {
	data, err := DecodeTransport(encoded)
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}
