package artifact

import "math"

type logistic struct {
	coefficients []float64
	intercept    float64
}

func (l logistic) score(row []float64) [2]float64 {
	z := l.intercept
	for i, c := range l.coefficients {
		z += c * row[i]
	}
	p := 1 / (1 + math.Exp(-z))
	return [2]float64{1 - p, p}
}
