// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"io"
	"reflect"

	"github.com/near/borsh-go"
)

// Serialize returns the Borsh encoding of [value]. Nil values encode to
// nothing.
func Serialize[T any](value T) ([]byte, error) {
	if isNil(value) {
		return nil, nil
	}
	return borsh.Serialize(value)
}

// SerializeTo writes the Borsh encoding of [value] to [w].
func SerializeTo[T any](value T, w io.Writer) error {
	b, err := Serialize(value)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Deserialize decodes exactly [size] bytes of [data] into a new T. Trailing
// bytes beyond [size] are ignored; fewer bytes fail with
// ErrInsufficientLength.
func Deserialize[T any](data []byte, size int) (*T, error) {
	if len(data) < size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientLength, size, len(data))
	}
	result := new(T)
	if err := borsh.Deserialize(result, data[:size]); err != nil {
		return nil, err
	}
	return result, nil
}

func isNil[T any](t T) bool {
	v := reflect.ValueOf(t)
	if !v.IsValid() {
		return true
	}
	kind := v.Kind()
	// Must be one of these types to be nillable
	return (kind == reflect.Ptr ||
		kind == reflect.Interface ||
		kind == reflect.Slice ||
		kind == reflect.Map ||
		kind == reflect.Chan ||
		kind == reflect.Func) &&
		v.IsNil()
}
