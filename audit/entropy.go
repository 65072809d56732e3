package audit

import "math"

// EntropySample is a lightweight statistical sanity check on a ciphertext
// sample — a monobit (bit-balance) ratio and the Shannon entropy of the byte
// distribution. It is a self-test, not a security proof: a cipher producing
// ciphertext that fails either check is almost certainly broken, but passing
// both proves nothing about key secrecy or MAC soundness.
type EntropySample struct {
	TotalBits    int
	OnesCount    int
	MonobitRatio float64 // fraction of set bits; should sit near 0.5
	ShannonBits  float64 // bits of entropy per byte; should sit near 8.0
}

// SampleEntropy runs the monobit and Shannon-entropy checks over data.
func SampleEntropy(data []byte) EntropySample {
	ones := 0
	for _, b := range data {
		for i := 0; i < 8; i++ {
			if (b>>i)&1 == 1 {
				ones++
			}
		}
	}
	totalBits := len(data) * 8

	var ratio float64
	if totalBits > 0 {
		ratio = float64(ones) / float64(totalBits)
	}

	return EntropySample{
		TotalBits:    totalBits,
		OnesCount:    ones,
		MonobitRatio: ratio,
		ShannonBits:  shannonEntropy(data),
	}
}

func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	entropy := 0.0
	n := float64(len(data))
	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}
