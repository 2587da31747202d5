package lookup

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestStatsByGame(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.PlayerStatLine
		want  map[string]models.GameStatAggregate
	}{
		{
			name:  "Empty",
			lines: nil,
			want:  map[string]models.GameStatAggregate{},
		},
		{
			name: "MissingGameIDSkipped",
			lines: []models.PlayerStatLine{
				{GameID: "", Points: fptr(10)},
			},
			want: map[string]models.GameStatAggregate{},
		},
		{
			name: "AggregatesPresentColumnsOnly",
			lines: []models.PlayerStatLine{
				{GameID: "g1", Points: fptr(10), Rebounds: fptr(4)},
				{GameID: "g1", Points: fptr(20), Rebounds: fptr(8)},
				{GameID: "g1", Points: fptr(30)},
			},
			want: map[string]models.GameStatAggregate{
				"g1": {
					Points:   &models.StatSummary{Mean: 20, Sum: 60, Max: 30},
					Rebounds: &models.StatSummary{Mean: 6, Sum: 12, Max: 8},
				},
			},
		},
		{
			name: "MultipleGames",
			lines: []models.PlayerStatLine{
				{GameID: "g1", Points: fptr(10)},
				{GameID: "g2", Points: fptr(7), Minutes: fptr(31.5)},
			},
			want: map[string]models.GameStatAggregate{
				"g1": {Points: &models.StatSummary{Mean: 10, Sum: 10, Max: 10}},
				"g2": {
					Points:  &models.StatSummary{Mean: 7, Sum: 7, Max: 7},
					Minutes: &models.StatSummary{Mean: 31.5, Sum: 31.5, Max: 31.5},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatsByGame(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StatsByGame() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInjuriesByTeam(t *testing.T) {
	injuries := []models.InjuryReport{
		{TeamID: "a", Severity: "day-to-day"},
		{TeamID: "a", Severity: "out"},
		{TeamID: "b", Severity: "out"},
		{TeamID: ""},
	}

	got := InjuriesByTeam(injuries)
	want := map[string]int{"a": 2, "b": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InjuriesByTeam() = %v, want %v", got, want)
	}

	if got := InjuriesByTeam(nil); len(got) != 0 {
		t.Errorf("InjuriesByTeam(nil) = %v, want empty", got)
	}
}

func TestWeatherByGame(t *testing.T) {
	records := []models.WeatherRecord{
		{GameID: "g1", Temperature: fptr(60), WindSpeed: fptr(12)},
		{GameID: "", Temperature: fptr(99)},
		{GameID: "g2"},
	}

	got := WeatherByGame(records)
	if len(got) != 2 {
		t.Fatalf("WeatherByGame() has %d entries, want 2", len(got))
	}
	if *got["g1"].Temperature != 60 || *got["g1"].WindSpeed != 12 {
		t.Errorf("g1 weather = %+v, want temp 60, wind 12", got["g1"])
	}
	if got["g2"].Temperature != nil {
		t.Errorf("g2 temperature = %v, want nil", *got["g2"].Temperature)
	}
}

func TestSentimentByTeam(t *testing.T) {
	records := []models.SentimentRecord{
		{TeamID: "a", Score: fptr(0.5)},
		{TeamID: "a", Score: fptr(1.5)},
		{TeamID: "b", Score: fptr(-2)},
		{TeamID: "c"},
		{TeamID: "", Score: fptr(9)},
	}

	got := SentimentByTeam(records)
	want := map[string]float64{"a": 1.0, "b": -2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SentimentByTeam() = %v, want %v", got, want)
	}
}

func TestBuildAssemblesAllLookups(t *testing.T) {
	lk, err := Build(context.Background(),
		[]models.PlayerStatLine{{GameID: "g1", Points: fptr(12)}},
		[]models.InjuryReport{{TeamID: "a"}},
		[]models.WeatherRecord{{GameID: "g1", Temperature: fptr(55)}},
		[]models.SentimentRecord{{TeamID: "a", Score: fptr(0.25)}},
	)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if agg, ok := lk.StatsByGame["g1"]; !ok || agg.Points == nil || agg.Points.Sum != 12 {
		t.Errorf("StatsByGame[g1] = %+v, want points sum 12", lk.StatsByGame["g1"])
	}
	if lk.InjuriesByTeam["a"] != 1 {
		t.Errorf("InjuriesByTeam[a] = %d, want 1", lk.InjuriesByTeam["a"])
	}
	if w, ok := lk.WeatherByGame["g1"]; !ok || *w.Temperature != 55 {
		t.Errorf("WeatherByGame[g1] = %+v, want temp 55", lk.WeatherByGame["g1"])
	}
	if math.Abs(lk.SentimentByTeam["a"]-0.25) > 1e-12 {
		t.Errorf("SentimentByTeam[a] = %v, want 0.25", lk.SentimentByTeam["a"])
	}
}
