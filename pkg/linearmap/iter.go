package linearmap

import "iter"

// Every borrowed iterator below snapshots the map's version stamp when it is
// created. Length changing operations bump the stamp, so a stale iterator
// fails loudly on the next advance instead of walking desynchronized slices.
// Replacing the value of an existing key does not bump the stamp, the same
// contract the built-in map gives a range loop.

func (m *LinearMap[K, V]) checkVersion(version uint32) {
	if m.version != version {
		panic("linearmap: map modified during iteration")
	}
}

// Iter is an iterator over the entries of a LinearMap, created by the Iter
// method. It holds one cursor per slice, advanced in lock-step.
type Iter[K, V any] struct {
	m       *LinearMap[K, V]
	kc, vc  int
	version uint32
}

// Iter returns an iterator over the key value pairs of the map, unsorted
func (m *LinearMap[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{m: m, version: m.version}
}

// Next returns the next key value pair, or false when the map is exhausted
func (it *Iter[K, V]) Next() (K, V, bool) {
	it.m.checkVersion(it.version)
	if it.kc >= len(it.m.keys) {
		return *new(K), *new(V), false
	}
	key, value := it.m.keys[it.kc], it.m.values[it.vc]
	it.kc++
	it.vc++
	return key, value, true
}

// IterMut is an iterator over the entries of a LinearMap that exposes each
// value through a pointer so it can be updated in place. Keys are not
// reachable for mutation through this view. Created by the IterMut method.
type IterMut[K, V any] struct {
	m       *LinearMap[K, V]
	kc, vc  int
	version uint32
}

// IterMut returns a mutable iterator over the key value pairs of the map,
// unsorted
func (m *LinearMap[K, V]) IterMut() *IterMut[K, V] {
	return &IterMut[K, V]{m: m, version: m.version}
}

// Next returns the next key and a pointer to its value, or false when the
// map is exhausted
func (it *IterMut[K, V]) Next() (K, *V, bool) {
	it.m.checkVersion(it.version)
	if it.kc >= len(it.m.keys) {
		return *new(K), nil, false
	}
	key, value := it.m.keys[it.kc], &it.m.values[it.vc]
	it.kc++
	it.vc++
	return key, value, true
}

// IntoIter is a consuming iterator over the entries of a LinearMap, created
// by the IntoIter method. It owns both slices; the map it came from is empty.
type IntoIter[K, V any] struct {
	keys   []K
	values []V
	kc, vc int
}

// IntoIter returns a consuming iterator over the key value pairs of the map.
// The iterator takes over both backing slices and the map is left empty, so
// the yielded keys and values belong to the caller.
func (m *LinearMap[K, V]) IntoIter() *IntoIter[K, V] {
	it := &IntoIter[K, V]{keys: m.keys, values: m.values}
	m.keys = nil
	m.values = nil
	m.version++
	return it
}

// Next returns the next key value pair, or false when exhausted
func (it *IntoIter[K, V]) Next() (K, V, bool) {
	if it.kc >= len(it.keys) {
		return *new(K), *new(V), false
	}
	key, value := it.keys[it.kc], it.values[it.vc]
	it.kc++
	it.vc++
	return key, value, true
}

// Keys is an iterator over the keys of a LinearMap, created by the Keys
// method
type Keys[K, V any] struct {
	m       *LinearMap[K, V]
	cursor  int
	version uint32
}

// Keys returns an iterator over the keys of the map, unsorted
func (m *LinearMap[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{m: m, version: m.version}
}

// Next returns the next key, or false when the map is exhausted
func (it *Keys[K, V]) Next() (K, bool) {
	it.m.checkVersion(it.version)
	if it.cursor >= len(it.m.keys) {
		return *new(K), false
	}
	key := it.m.keys[it.cursor]
	it.cursor++
	return key, true
}

// Values is an iterator over the values of a LinearMap, created by the
// Values method
type Values[K, V any] struct {
	m       *LinearMap[K, V]
	cursor  int
	version uint32
}

// Values returns an iterator over the values of the map, unsorted
func (m *LinearMap[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{m: m, version: m.version}
}

// Next returns the next value, or false when the map is exhausted
func (it *Values[K, V]) Next() (V, bool) {
	it.m.checkVersion(it.version)
	if it.cursor >= len(it.m.values) {
		return *new(V), false
	}
	value := it.m.values[it.cursor]
	it.cursor++
	return value, true
}

// ValuesMut is an iterator over pointers to the values of a LinearMap,
// created by the ValuesMut method
type ValuesMut[K, V any] struct {
	m       *LinearMap[K, V]
	cursor  int
	version uint32
}

// ValuesMut returns an iterator over the values of the map that allows
// updating each value in place, unsorted
func (m *LinearMap[K, V]) ValuesMut() *ValuesMut[K, V] {
	return &ValuesMut[K, V]{m: m, version: m.version}
}

// Next returns a pointer to the next value, or false when the map is
// exhausted
func (it *ValuesMut[K, V]) Next() (*V, bool) {
	it.m.checkVersion(it.version)
	if it.cursor >= len(it.m.values) {
		return nil, false
	}
	value := &it.m.values[it.cursor]
	it.cursor++
	return value, true
}

// All returns a range-over-func view of the key value pairs in current
// index order. The sequence is single use per call but All can simply be
// called again for another pass.
func (m *LinearMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		version := m.version
		for i := 0; i < len(m.keys); i++ {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
			// check after the yield so a structural change made inside
			// the loop body trips the guard before the next entry
			m.checkVersion(version)
		}
	}
}
