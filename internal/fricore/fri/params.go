package fri

import "fmt"

// FriConfig holds the batch-wide settings shared by every proof produced
// under a given set of circuit parameters (spec.md §6).
type FriConfig struct {
	// CapHeight is the height (log2 of leaf count) of each committed
	// Merkle cap.
	CapHeight int
	// RateBits is log2 of the low-degree extension's blow-up factor.
	RateBits int
	// NumQueryRounds is how many query rounds a proof carries.
	NumQueryRounds int
}

// FriParams augments FriConfig with the per-proof reduction schedule.
type FriParams struct {
	Config FriConfig
	// ReductionArityBits[i] is log2 of the arity used at reduction step i.
	ReductionArityBits []int
	// DegreeBits is log2 of the degree of the polynomial being committed.
	DegreeBits int
	// Hiding indicates whether oracle leaves carry a salting tail.
	Hiding bool
}

// NewFriParams validates and constructs a FriParams.
func NewFriParams(config FriConfig, reductionArityBits []int, degreeBits int, hiding bool) (*FriParams, error) {
	if config.CapHeight < 0 {
		return nil, fmt.Errorf("fri: cap_height must be non-negative, got %d", config.CapHeight)
	}
	if config.RateBits <= 0 {
		return nil, fmt.Errorf("fri: rate_bits must be positive, got %d", config.RateBits)
	}
	if config.NumQueryRounds <= 0 {
		return nil, fmt.Errorf("fri: num_query_rounds must be positive, got %d", config.NumQueryRounds)
	}
	if len(reductionArityBits) == 0 {
		return nil, fmt.Errorf("fri: reduction_arity_bits must be non-empty")
	}
	for i, b := range reductionArityBits {
		if b <= 0 {
			return nil, fmt.Errorf("fri: reduction_arity_bits[%d] must be positive, got %d", i, b)
		}
	}
	if degreeBits <= 0 {
		return nil, fmt.Errorf("fri: degree_bits must be positive, got %d", degreeBits)
	}

	total := 0
	for _, b := range reductionArityBits {
		total += b
	}
	if total > degreeBits+config.RateBits {
		return nil, fmt.Errorf("fri: reduction schedule reduces by 2^%d, more than the extended degree 2^%d",
			total, degreeBits+config.RateBits)
	}

	return &FriParams{
		Config:              config,
		ReductionArityBits:  append([]int(nil), reductionArityBits...),
		DegreeBits:          degreeBits,
		Hiding:              hiding,
	}, nil
}

// WithCapHeight sets the Merkle cap height and returns p for chaining.
func (p *FriParams) WithCapHeight(capHeight int) *FriParams {
	p.Config.CapHeight = capHeight
	return p
}

// WithNumQueryRounds sets the query round count and returns p for chaining.
func (p *FriParams) WithNumQueryRounds(n int) *FriParams {
	p.Config.NumQueryRounds = n
	return p
}

// WithHiding toggles salting of oracle leaves and returns p for chaining.
func (p *FriParams) WithHiding(hiding bool) *FriParams {
	p.Hiding = hiding
	return p
}

// FinalPolyLen returns the number of coefficients of the final,
// fully-reduced polynomial sent in the clear.
func (p *FriParams) FinalPolyLen() int {
	total := 0
	for _, b := range p.ReductionArityBits {
		total += b
	}
	return 1 << (p.DegreeBits + p.Config.RateBits - total)
}

// SaltSize returns the number of salt elements appended to each oracle
// leaf when hiding is enabled, 0 otherwise (spec.md §4.B).
func SaltSize(hiding bool) int {
	if hiding {
		return 4
	}
	return 0
}
