// Package cache provides a generic, thread-safe LRU (Least Recently Used) cache
// used to memoize derived per-type data such as reflection descriptors.
//
// The cache evicts the least recently used entry once it reaches its configured
// capacity, which bounds memory for processes that see many distinct model types.
//
// # Usage
//
//	descriptors := cache.NewLRUCache[reflect.Type, *descriptor](512)
//
//	d := descriptors.GetOrCompute(t, buildDescriptor)
//
//	if d, ok := descriptors.Get(t); ok {
//		// use d
//	}
//
// All operations take a single mutex and run in O(1).
package cache
