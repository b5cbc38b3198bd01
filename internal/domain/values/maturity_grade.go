package values

// MaturityGrade is the letter grade derived from the overall maturity
// percentage. Thresholds are boundary-inclusive fixed cut points.
type MaturityGrade string

const (
	GradeA MaturityGrade = "A"
	GradeB MaturityGrade = "B"
	GradeC MaturityGrade = "C"
	GradeD MaturityGrade = "D"
	GradeE MaturityGrade = "E"
)

// GradeFromPercent maps an overall percentage to a letter grade.
// A >= 80, B >= 60, C >= 40, D >= 20, else E. Monotonic by construction.
func GradeFromPercent(pct float64) MaturityGrade {
	switch {
	case pct >= 80:
		return GradeA
	case pct >= 60:
		return GradeB
	case pct >= 40:
		return GradeC
	case pct >= 20:
		return GradeD
	default:
		return GradeE
	}
}

func (g MaturityGrade) String() string {
	return string(g)
}
