package ai

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TiktokenCounter counts tokens with the BPE encoding of an OpenAI model.
// Models tiktoken does not know (Gemini, local models) use cl100k_base as an
// estimate. The encoding is loaded on first use.
type TiktokenCounter struct {
	model string

	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

func NewTiktokenCounter(model string) *TiktokenCounter {
	return &TiktokenCounter{model: model}
}

func (c *TiktokenCounter) CountTokens(text string) (int, error) {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.EncodingForModel(c.model)
		if c.err != nil {
			c.enc, c.err = tiktoken.GetEncoding(fallbackEncoding)
		}
	})
	if c.err != nil {
		return 0, fmt.Errorf("load tiktoken encoding: %w", c.err)
	}
	return len(c.enc.Encode(text, nil, nil)), nil
}
