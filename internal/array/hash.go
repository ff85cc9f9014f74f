package array

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// HashSampleSize is the default element budget for HashArray sampling.
const HashSampleSize = 100

// HashValue returns a fast content hash for use as an equality or
// memoization key. Dense arrays hash by content via HashArray with the
// default sample budget; other values hash their printed representation.
func HashValue(v any) uint64 {
	if d, ok := v.(*Dense); ok {
		return HashArray(d, HashSampleSize)
	}

	h := fnv.New64a()
	fmt.Fprintf(h, "%T|%v", v, v)
	return h.Sum64()
}

// HashArray computes a fast, non-cryptographic content hash of an array.
//
// Arrays with fewer than n elements hash their full raw byte contents.
// Larger arrays deterministically sample n indices per axis with a PRNG
// seeded by the element count, so repeated calls on same-sized arrays pick
// the same elements: reproducibility, not randomness. Two large arrays that
// differ only outside the sampled indices collide; this is acceptable for
// dense data and weaker for sparse data.
//
// The array is hashed through a read-only view as a best-effort guard
// against concurrent mutation mid-hash; racing writers still yield an
// undefined (but non-crashing) hash.
func HashArray(a *Dense, n int) uint64 {
	v := a.ReadonlyView()

	if v.NumElements() < n {
		return hashBytes(v.Data())
	}

	rng := rand.New(rand.NewSource(int64(v.NumElements())))
	ndim := v.NumDims()
	inds := make([][]int, ndim)
	for i := 0; i < ndim; i++ {
		axisInds := make([]int, n)
		for k := range axisInds {
			axisInds[k] = rng.Intn(v.shape[i])
		}
		inds[i] = axisInds
	}

	// Gather the n pairwise-indexed elements and hash their bytes.
	elemSize := v.dtype.Size()
	strides := v.stride
	data := v.Data()
	sampled := make([]byte, 0, n*elemSize)
	for k := 0; k < n; k++ {
		flat := 0
		for i := 0; i < ndim; i++ {
			flat += inds[i][k] * strides[i]
		}
		start := flat * elemSize
		sampled = append(sampled, data[start:start+elemSize]...)
	}

	return hashBytes(sampled)
}

func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}
