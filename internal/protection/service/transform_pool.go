package service

import "crypto/cipher"

// transform is a reusable CBC block mode with an all-zero built-in IV.
type transform struct {
	mode cipher.BlockMode
}

// ivResetter is implemented by the standard library CBC modes.
type ivResetter interface {
	SetIV(iv []byte)
}

// transformPool is a bounded set of idle transforms. get and put never block:
// an empty pool yields nil and a full pool drops the returned transform.
type transformPool struct {
	idle chan *transform
}

func newTransformPool(capacity int) *transformPool {
	return &transformPool{idle: make(chan *transform, capacity)}
}

func (p *transformPool) get() *transform {
	select {
	case t := <-p.idle:
		return t
	default:
		return nil
	}
}

func (p *transformPool) put(t *transform) bool {
	select {
	case p.idle <- t:
		return true
	default:
		return false
	}
}

// size returns the number of idle transforms currently pooled.
func (p *transformPool) size() int {
	return len(p.idle)
}
