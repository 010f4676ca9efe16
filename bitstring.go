package qprep

// Ordering selects how the 2^k control bit strings of a multiplexed rotation
// are sequenced. Gray code flips exactly one control bit between consecutive
// strings and therefore needs only one CNOT per transition; natural binary
// counting issues a CNOT for every bit that changes.
type Ordering int

const (
	OrderGray Ordering = iota
	OrderNatural
)

// String returns the configuration name of the ordering.
func (o Ordering) String() string {
	if o == OrderNatural {
		return "natural"
	}
	return "gray"
}

// orderedBitStrings enumerates all k-bit strings in the given ordering.
// bs[m] is the m-th string, most-significant bit first; nums[m] is its decimal
// value, used to index amplitude and angle tables. For k == 0 the enumeration
// is a single empty string with value 0.
func orderedBitStrings(k int, ord Ordering) (bs [][]byte, nums []int) {
	if ord == OrderNatural {
		bs = make([][]byte, 1<<k)
		nums = make([]int, 1<<k)
		for i := range bs {
			b := make([]byte, k)
			for j := range k {
				b[j] = byte(i>>(k-1-j)) & 1
			}
			bs[i] = b
			nums[i] = i
		}
		return bs, nums
	}

	// Reflected Gray code, built by prepending 0 to the previous code and 1 to
	// its reflection. The prepended bit is the most significant, so its weight
	// doubles at each growth step.
	bs = [][]byte{{}}
	nums = []int{0}
	for i := range k {
		grown := make([][]byte, 0, 2*len(bs))
		for _, b := range bs {
			grown = append(grown, append([]byte{0}, b...))
		}
		for j := len(bs) - 1; j >= 0; j-- {
			grown = append(grown, append([]byte{1}, bs[j]...))
		}
		bs = grown
		for j := len(nums) - 1; j >= 0; j-- {
			nums = append(nums, nums[j]+1<<i)
		}
	}
	return bs, nums
}

// walshAngle inverts the block-diagonal structure of a multiplexor: the
// rotation issued at bit string b is the signed average
//
//	sum_d (-1)^{<b,d>} · angles[num(d)] / 2^k
//
// over all control assignments d, so that the signs accumulated from the
// transition CNOTs reconstruct exactly angles[x] for each assignment x.
func walshAngle(b []byte, angles []float64, bs [][]byte, nums []int) float64 {
	sum := 0.0
	for m, d := range bs {
		parity := 0
		for j := range b {
			parity += int(b[j] & d[j])
		}
		if parity&1 == 0 {
			sum += angles[nums[m]]
		} else {
			sum -= angles[nums[m]]
		}
	}
	return sum / float64(len(bs))
}

// appendTransitionCNOTs emits one CNOT on the target for every control bit
// that differs between the strings from and to.
func appendTransitionCNOTs(seq *Sequence, from, to []byte, controls []int, target int) {
	for j := range from {
		if from[j] != to[j] {
			seq.Append(CNOT(controls[j], target))
		}
	}
}
