package gen

import "math/rand/v2"

// Bool produces true or false with even probability.
func Bool() Gen[bool] {
	return func(_ int, rng *rand.Rand) bool {
		return rng.IntN(2) == 0
	}
}

// Int produces a uniformly random int over the full signed range.
func Int() Gen[int] {
	return func(_ int, rng *rand.Rand) int {
		return int(rng.Uint64())
	}
}

// Uint produces a uniformly random uint over the full unsigned range.
func Uint() Gen[uint] {
	return func(_ int, rng *rand.Rand) uint {
		return uint(rng.Uint64())
	}
}

// Byte produces a uniformly random byte.
func Byte() Gen[byte] {
	return func(_ int, rng *rand.Rand) byte {
		return byte(rng.UintN(256))
	}
}

// SmallN produces a small natural number uniformly in [0, size].
// This is the bounded-magnitude workhorse for properties that want
// inputs proportional to the size factor.
func SmallN() Gen[uint] {
	return func(size int, rng *rand.Rand) uint {
		if size <= 0 {
			return 0
		}
		return uint(rng.IntN(size + 1))
	}
}
