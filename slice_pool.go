package nbt

import "github.com/delaneyj/toolbelt"

var chunkPool = toolbelt.New(func() []byte { return make([]byte, 0, chunkSize+8) })

func getChunk() []byte {
	return chunkPool.Get()[:0]
}

func putChunk(b []byte) {
	if cap(b) > 4*chunkSize {
		return
	}
	chunkPool.Put(b[:0])
}
