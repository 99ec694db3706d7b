package matching

// arrangementCompat maps candidate preference -> posting arrangement ->
// score. Remote-preferring candidates tolerate hybrid far better than
// on-site; on-site-preferring candidates rate fully remote lowest.
var arrangementCompat = map[WorkArrangement]map[WorkArrangement]float64{
	ArrangementRemote: {
		ArrangementRemote: 100,
		ArrangementHybrid: 80,
		ArrangementOnSite: 40,
	},
	ArrangementHybrid: {
		ArrangementRemote: 90,
		ArrangementHybrid: 100,
		ArrangementOnSite: 50,
	},
	ArrangementOnSite: {
		ArrangementRemote: 30,
		ArrangementHybrid: 70,
		ArrangementOnSite: 100,
	},
}

// ScoreArrangement is a fixed table lookup; no preference means a
// neutral 50, as does an arrangement value outside the table.
func ScoreArrangement(arr WorkArrangement, pref *WorkArrangement) float64 {
	if pref == nil {
		return 50
	}
	row, ok := arrangementCompat[*pref]
	if !ok {
		return 50
	}
	score, ok := row[arr]
	if !ok {
		return 50
	}
	return score
}
