package fundfolio

import (
	"context"
	"io/fs"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	m map[string][]byte
}

func newMemBackend() *memBackend { return &memBackend{m: make(map[string][]byte)} }

func (b *memBackend) Load(key string) ([]byte, error) {
	data, ok := b.m[key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (b *memBackend) Save(key string, data []byte) error {
	b.m[key] = data
	return nil
}

// staticSource returns the mapped quote for a code, nil for unknown codes.
func staticSource(quotes map[string]*Quote) QuoteSource {
	return QuoteSourceFunc(func(_ context.Context, code string) *Quote {
		return quotes[code]
	})
}

// nilSource never has a quote.
var nilSource = QuoteSourceFunc(func(context.Context, string) *Quote { return nil })
