package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given standard
// deviation. The kernel is normalized so all values sum to 1.0.
//
// The kernel size is 2 * ceil(sigma * 3) + 1, which covers 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := KernelRadius(sigma)
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor goes away in normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// KernelRadius returns the half size of the kernel for sigma, i.e. how far
// a blur spreads coverage in each direction.
func KernelRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// kernelCache caches computed Gaussian kernels.
// Key is sigma * 100 to absorb float noise.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Evict half; label effects rarely use more than a few radii.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a shared, read-only kernel for sigma.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
