package matching

import "math"

// ScoreSalary rates a posting's salary band against the candidate's
// expectation. A stated minimum expectation dominates: the posting's
// upper bound (falling back to its lower bound) is compared against it,
// with a diminishing bonus for exceeding it. Only when no minimum is
// stated does the maximum-expectation check apply.
func ScoreSalary(sal *Salary, exp *SalaryExpectation) float64 {
	if exp == nil || sal == nil {
		return 50
	}

	if exp.Min != nil {
		reference := 0.0
		if sal.Max != nil {
			reference = *sal.Max
		} else if sal.Min != nil {
			reference = *sal.Min
		}

		want := *exp.Min
		if reference >= want {
			bonus := 0.0
			if want > 0 {
				bonus = 50 * (reference - want) / want
			}
			return math.Min(100, 50+bonus)
		}
		return 20
	}

	if exp.Max != nil && sal.Min != nil {
		if *sal.Min <= *exp.Max {
			return 80
		}
		return 30
	}

	return 50
}
