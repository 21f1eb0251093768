package narrator

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// promptEstimator lazily resolves a tokenizer for prompt-size estimates.
// Resolving an encoding can touch the network to fetch its data, so it runs
// at most once and only when an estimate is actually wanted.
type promptEstimator struct {
	model string
	once  sync.Once
	enc   *tiktoken.Tiktoken
}

// count returns the estimated token count of text, or 0 when no encoding is
// available for the model.
func (e *promptEstimator) count(text string) int {
	e.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(e.model)
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
			if err != nil {
				return
			}
		}
		e.enc = enc
	})
	if e.enc == nil {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}
