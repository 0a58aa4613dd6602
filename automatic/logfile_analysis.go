package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gomoku/stats"
)

// Confidence is the level, in percent, of the win-rate intervals.
const Confidence = 95.0

const histogramBins = 10

// PlayerSummary is one engine's results over a log file.
type PlayerSummary struct {
	Name           string  `yaml:"name"`
	Wins           int     `yaml:"wins"`
	WinsGoingFirst int     `yaml:"wins-going-first"`
	WentFirst      int     `yaml:"went-first"`
	WinRate        float64 `yaml:"win-rate"`
	WinRateLow     float64 `yaml:"win-rate-low"`
	WinRateHigh    float64 `yaml:"win-rate-high"`
}

// Summary collects the statistics of a computer-vs-computer log file.
type Summary struct {
	Games                  int              `yaml:"games"`
	Draws                  int              `yaml:"draws"`
	FirstPlayerWins        int              `yaml:"first-player-wins"`
	Players                [2]PlayerSummary `yaml:"players"`
	MeanLength             float64          `yaml:"mean-length"`
	StdevLength            float64          `yaml:"stdev-length"`
	MinLength              int              `yaml:"min-length"`
	MaxLength              int              `yaml:"max-length"`
	DistinctFinalPositions int              `yaml:"distinct-final-positions"`

	lengths []float64
}

// AnalyzeLogFile reads a log written by StartCompVCompGames.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return AnalyzeLog(file)
}

func AnalyzeLog(in io.Reader) (*Summary, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(logHeader)

	var records []GameRecord
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row[0] == logHeader[0] {
			continue
		}
		turns, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", row[0], err)
		}
		fp, err := strconv.ParseUint(row[6], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", row[0], err)
		}
		records = append(records, GameRecord{
			GameID: row[0], Player1: row[1], Player2: row[2], First: row[3],
			Winner: row[4], Turns: turns, Fingerprint: fp,
		})
	}
	if len(records) == 0 {
		return nil, errors.New("log file has no games")
	}
	return summarize(records), nil
}

func summarize(records []GameRecord) *Summary {
	s := &Summary{Games: len(records)}
	s.Players[0].Name = records[0].Player1
	s.Players[1].Name = records[0].Player2

	length := &stats.Statistic{}
	for _, rec := range records {
		length.Push(float64(rec.Turns))
		s.lengths = append(s.lengths, float64(rec.Turns))
		if rec.Winner == Draw {
			s.Draws++
		}
		if rec.Winner == rec.First {
			s.FirstPlayerWins++
		}
		for i := range s.Players {
			p := &s.Players[i]
			if rec.First == p.Name {
				p.WentFirst++
			}
			if rec.Winner == p.Name {
				p.Wins++
				if rec.First == p.Name {
					p.WinsGoingFirst++
				}
			}
		}
	}
	for i := range s.Players {
		wr := stats.WinRateInterval(s.Players[i].Wins, s.Draws, s.Games, Confidence)
		s.Players[i].WinRate = wr.Rate
		s.Players[i].WinRateLow = wr.Low
		s.Players[i].WinRateHigh = wr.High
	}
	s.MeanLength = length.Mean()
	s.StdevLength = length.Stdev()
	s.MinLength = int(length.Min())
	s.MaxLength = int(length.Max())
	s.DistinctFinalPositions = len(lo.Uniq(lo.Map(records, func(r GameRecord, _ int) uint64 {
		return r.Fingerprint
	})))
	return s
}

// String renders the summary as YAML followed by a histogram of game
// lengths.
func (s *Summary) String() string {
	var sb strings.Builder
	out, err := yaml.Marshal(s)
	if err != nil {
		return err.Error()
	}
	sb.Write(out)
	if len(s.lengths) > 0 {
		sb.WriteString("\ngame length:\n")
		h := histogram.Hist(histogramBins, s.lengths)
		if err := histogram.Fprint(&sb, h, histogram.Linear(40)); err != nil {
			sb.WriteString(err.Error())
		}
	}
	return sb.String()
}
