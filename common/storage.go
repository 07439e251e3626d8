package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// GetList returns a deserialized list of byte slices stored by the given key.
// Missing key yields an empty list.
func GetList(ctx storage.Context, key any) [][]byte {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([][]byte)
	}

	return [][]byte{}
}

// GetIntList is GetList for lists of integers.
func GetIntList(ctx storage.Context, key any) []int {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]int)
	}

	return []int{}
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// AppendUnique appends elem to the list stored by the given key unless the
// list already contains it. Stored lists keep insertion order, so they behave
// as ordered sets.
func AppendUnique(ctx storage.Context, key any, elem []byte) {
	list := GetList(ctx, key)
	for i := range list {
		if BytesEqual(list[i], elem) {
			return
		}
	}
	SetSerialized(ctx, key, append(list, elem))
}

// AppendUniqueInt is AppendUnique for lists of integers.
func AppendUniqueInt(ctx storage.Context, key any, elem int) {
	list := GetIntList(ctx, key)
	for i := range list {
		if list[i] == elem {
			return
		}
	}
	SetSerialized(ctx, key, append(list, elem))
}

// BytesEqual compares two slice of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}
