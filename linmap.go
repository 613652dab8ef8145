package linmap

// Mapper is an interface for the map containers in this module
type Mapper[K, V any] interface {
	Has(key K) bool
	Set(key K, value V) (V, bool)
	Get(key K) (V, bool)
	Del(key K) (V, bool)
	Len() int
	IsEmpty() bool
	Clear()
	Range(it func(key K, value V) bool)
}
