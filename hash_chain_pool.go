package lznt1

import "sync"

// hashChainPool is a pool of compressor hash chains (16 KiB of tables each).
var hashChainPool = sync.Pool{
	New: func() any {
		return &hashChain{}
	},
}

// acquireHashChain acquires a hash chain from the pool. The chain is reset
// per chunk by the compressor, so no clearing happens here.
func acquireHashChain() *hashChain {
	return hashChainPool.Get().(*hashChain)
}

// releaseHashChain releases a hash chain to the pool.
func releaseHashChain(c *hashChain) {
	if c == nil {
		return
	}

	hashChainPool.Put(c)
}
