package lintcache

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

func encodeRaw(w io.Writer, p *Payload) error {
	return msgpack.NewEncoder(w).Encode(p)
}
