package evaluation

// Score compares a detected community with the true one.
// Precision is 0 for an empty detection, recall is 0 for an empty truth,
// and F1 is 0 when both are 0.
func Score(detected, truth map[int64]struct{}) (precision, recall, f1 float64) {
	overlap := intersectionSize(detected, truth)

	if len(detected) > 0 {
		precision = float64(overlap) / float64(len(detected))
	}
	if len(truth) > 0 {
		recall = float64(overlap) / float64(len(truth))
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

func intersectionSize(a, b map[int64]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for v := range a {
		if _, ok := b[v]; ok {
			n++
		}
	}
	return n
}
