package align

// Edit is a unit-cost global aligner (mismatch and gap both cost 1). On
// equal-cost paths the traceback prefers a diagonal step, then a gap in b,
// then a gap in a, so the output is fully deterministic.
type Edit struct{}

func (Edit) Align(a, b string) (string, string, error) {
	if x, y, ok := trivial(a, b); ok {
		return x, y, nil
	}
	n, m := len(a), len(b)
	w := m + 1
	d := make([]int32, (n+1)*w)
	for i := 0; i <= n; i++ {
		d[i*w] = int32(i)
	}
	for j := 0; j <= m; j++ {
		d[j] = int32(j)
	}
	for i := 1; i <= n; i++ {
		row, prev := d[i*w:], d[(i-1)*w:]
		for j := 1; j <= m; j++ {
			best := prev[j-1] + sub(a[i-1], b[j-1])
			if v := prev[j] + 1; v < best {
				best = v
			}
			if v := row[j-1] + 1; v < best {
				best = v
			}
			row[j] = best
		}
	}

	x := make([]byte, 0, n+m)
	y := make([]byte, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		cur := d[i*w+j]
		switch {
		case i > 0 && j > 0 && cur == d[(i-1)*w+j-1]+sub(a[i-1], b[j-1]):
			x, y = append(x, a[i-1]), append(y, b[j-1])
			i, j = i-1, j-1
		case i > 0 && cur == d[(i-1)*w+j]+1:
			x, y = append(x, a[i-1]), append(y, Gap)
			i--
		default:
			x, y = append(x, Gap), append(y, b[j-1])
			j--
		}
	}
	reverse(x)
	reverse(y)
	return string(x), string(y), nil
}

func sub(p, q byte) int32 {
	if p == q {
		return 0
	}
	return 1
}

func reverse(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
