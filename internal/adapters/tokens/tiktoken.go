// Package tokens estimates model token counts for diffs and prompts.
package tokens

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"

	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// bytesPerToken is the rough ratio used when no encoding is available
const bytesPerToken = 4

// TiktokenEstimator counts tokens with a tiktoken encoding.
// The codec is loaded lazily on first use and shared afterwards.
type TiktokenEstimator struct {
	codec    tokenizer.Codec
	encoding tokenizer.Encoding
	loadErr  error
	once     sync.Once
}

// Compile-time interface verification
var _ ports.TokenEstimator = (*TiktokenEstimator)(nil)

// NewTiktokenEstimator creates an estimator using cl100k_base
func NewTiktokenEstimator() *TiktokenEstimator {
	return NewTiktokenEstimatorForEncoding(tokenizer.Cl100kBase)
}

// NewTiktokenEstimatorForEncoding creates an estimator for a specific encoding
func NewTiktokenEstimatorForEncoding(encoding tokenizer.Encoding) *TiktokenEstimator {
	return &TiktokenEstimator{encoding: encoding}
}

// Estimate returns the token count of text.
// If the encoding cannot be loaded or fails on the input, it falls back to len/4.
func (e *TiktokenEstimator) Estimate(text string) int {
	if text == "" {
		return 0
	}

	e.once.Do(func() {
		e.codec, e.loadErr = tokenizer.Get(e.encoding)
		if e.loadErr != nil {
			logging.Logger.Warn("Failed to load tokenizer, using byte estimate",
				"encoding", e.encoding,
				"error", e.loadErr)
		}
	})
	if e.loadErr != nil {
		return approximate(text)
	}

	ids, _, err := e.codec.Encode(text)
	if err != nil {
		logging.Logger.Debug("Tokenizer failed, using byte estimate", "error", err)
		return approximate(text)
	}
	return len(ids)
}

func approximate(text string) int {
	return (len(text) + bytesPerToken - 1) / bytesPerToken
}
