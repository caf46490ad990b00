// Copyright (c) 2015, Emir Pasic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedhashmap

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/spf13/cast"

	"mlib.com/containers"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map, as an object whose
// member order is the map's iteration order.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteRune('{')
	it := m.Iterator()
	lastIndex := m.Size() - 1
	index := 0
	for it.Next() {
		km, err := json.Marshal(cast.ToString(it.Key()))
		if err != nil {
			return nil, err
		}
		buf.Write(km)
		buf.WriteRune(':')
		vm, err := json.Marshal(it.Value())
		if err != nil {
			return nil, err
		}
		buf.Write(vm)
		if index != lastIndex {
			buf.WriteRune(',')
		}
		index++
	}
	buf.WriteRune('}')
	return buf.Bytes(), nil
}

// FromJSON populates the map from the input JSON representation. The order
// of the object's members in the document becomes the map's iteration order.
func (m *Map[K, V]) FromJSON(data []byte) error {
	elements := make(map[K]V)
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}

	index := make(map[K]int)
	keys := make([]K, 0, len(elements))
	for key := range elements {
		keys = append(keys, key)
		esc, err := json.Marshal(key)
		if err != nil {
			return err
		}
		index[key] = bytes.Index(data, esc)
	}
	sort.Slice(keys, func(i, j int) bool {
		return index[keys[i]] < index[keys[j]]
	})

	m.Clear()
	// Records are prepended, so replaying in reverse document order leaves
	// the document's first member at the front of the iteration.
	for i := len(keys) - 1; i >= 0; i-- {
		m.Put(keys[i], elements[keys[i]])
	}
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}
