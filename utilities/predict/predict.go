// Package predict implements the first-difference predictive model.
//
// Each pixel is predicted to be equal to the one before it in scan order, and
// only the prediction error is kept. Smooth gradients turn into long runs of the
// same small difference, which the run-length coder handles far better than the
// original values. All arithmetic wraps modulo 256.
package predict

// Forward replaces every byte except the first with its difference from the
// byte before it, in place. It returns `sequence` for convenience.
func Forward(sequence []byte) []byte {
	// Walk backwards so each subtraction still sees the original predecessor.
	for i := len(sequence) - 1; i > 0; i-- {
		sequence[i] -= sequence[i-1]
	}
	return sequence
}

// Inverse undoes [Forward] in place. Each pixel depends on the previously
// restored one, so this must run strictly from first to last.
func Inverse(differences []byte) []byte {
	for i := 1; i < len(differences); i++ {
		differences[i] += differences[i-1]
	}
	return differences
}
