package autoplay

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
)

// Stats aggregates session results for a soak run.
type Stats struct {
	Sessions   int
	Shuffles   int
	Scores     []float64
	GroupSizes []float64
}

func (s *Stats) add(res *SessionResult) {
	s.Sessions++
	s.Shuffles += res.Shuffles
	s.Scores = append(s.Scores, float64(res.Score))
	for _, sz := range res.GroupSizes {
		s.GroupSizes = append(s.GroupSizes, float64(sz))
	}
}

// MeanScore is the mean session score.
func (s *Stats) MeanScore() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	return stat.Mean(s.Scores, nil)
}

// StdDevScore is the sample standard deviation of session scores.
func (s *Stats) StdDevScore() float64 {
	if len(s.Scores) < 2 {
		return 0
	}
	return stat.StdDev(s.Scores, nil)
}

// WriteHistogram renders a text histogram of resolved group sizes.
func (s *Stats) WriteHistogram(w io.Writer) error {
	if len(s.GroupSizes) == 0 {
		_, err := fmt.Fprintln(w, "no groups resolved")
		return err
	}
	hist := histogram.Hist(8, s.GroupSizes)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// Summary is a one-line digest of the run.
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d sessions, mean score %.1f (stddev %.1f), %d forced shuffles",
		s.Sessions, s.MeanScore(), s.StdDevScore(), s.Shuffles)
}
