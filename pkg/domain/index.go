package domain

import (
	"sort"
)

// Index maps a content kind to its bucket, and each bucket maps a content
// key to the content object. It is built by a single harvest and is not safe
// for concurrent mutation.
type Index struct {
	buckets map[Kind]map[string]Content
}

func NewIndex() *Index {
	buckets := make(map[Kind]map[string]Content, len(Kinds))
	for _, k := range Kinds {
		buckets[k] = make(map[string]Content)
	}

	return &Index{buckets: buckets}
}

// Put stores c under its kind and key. Storing the same key twice replaces
// the earlier object, so a key never appears more than once in a bucket.
// It reports whether the key was new.
func (i *Index) Put(c Content) bool {
	bucket := i.buckets[c.Kind()]
	_, exists := bucket[c.Key()]
	bucket[c.Key()] = c

	return !exists
}

func (i *Index) Has(kind Kind, key string) bool {
	_, ok := i.buckets[kind][key]

	return ok
}

func (i *Index) Get(kind Kind, key string) (Content, bool) {
	c, ok := i.buckets[kind][key]

	return c, ok
}

// Bucket returns the content of one kind ordered by key. Numeric keys sort
// numerically.
func (i *Index) Bucket(kind Kind) []Content {
	bucket := i.buckets[kind]
	out := make([]Content, 0, len(bucket))
	for _, c := range bucket {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool {
		return keyLess(out[a].Key(), out[b].Key())
	})

	return out
}

// Len returns the number of items of one kind, or of every kind when kind is
// empty.
func (i *Index) Len(kind Kind) int {
	if kind != "" {
		return len(i.buckets[kind])
	}
	total := 0
	for _, bucket := range i.buckets {
		total += len(bucket)
	}

	return total
}

// Counts returns the bucket sizes keyed by kind.
func (i *Index) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(i.buckets))
	for k, bucket := range i.buckets {
		counts[k] = len(bucket)
	}

	return counts
}

func keyLess(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}

	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
