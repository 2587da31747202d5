package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/J-Stoned/fantasy-ai-ultimate/internal/models"
)

// MockConn implements driver.Conn for testing
type MockConn struct {
	driver.Conn
	QueryFunc func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error)
}

func (m *MockConn) Query(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, args...)
	}
	return &MockRows{}, nil
}

// MockRows implements driver.Rows for testing
type MockRows struct {
	driver.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockRows) Scan(dest ...interface{}) error {
	if m.Index > len(m.Data) {
		return nil
	}
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockRows) Close() error { return nil }
func (m *MockRows) Err() error   { return nil }

// setDest assigns val into a scan destination, handling the *float64
// targets used for nullable stat columns (nil val leaves the pointer nil).
func setDest(dest interface{}, val interface{}) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	valV := reflect.ValueOf(val)
	if v.Kind() == reflect.Ptr && valV.Type().ConvertibleTo(v.Type().Elem()) {
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(valV.Convert(v.Type().Elem()))
		v.Set(p)
		return
	}
	if valV.Type().ConvertibleTo(v.Type()) {
		v.Set(valV.Convert(v.Type()))
		return
	}
	v.Set(valV)
}

func fptr(v float64) *float64 { return &v }

func TestLoadPlayerStats(t *testing.T) {
	tests := []struct {
		name     string
		mockRows [][]interface{}
		want     []models.PlayerStatLine
	}{
		{
			name: "Success",
			mockRows: [][]interface{}{
				{"g1", float64(22), float64(8), float64(5), float64(2), float64(34.5)},
				{"g2", float64(11), nil, nil, nil, nil},
			},
			want: []models.PlayerStatLine{
				{GameID: "g1", Points: fptr(22), Rebounds: fptr(8), Assists: fptr(5), Turnovers: fptr(2), Minutes: fptr(34.5)},
				{GameID: "g2", Points: fptr(11)},
			},
		},
		{
			name:     "Empty",
			mockRows: [][]interface{}{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockConn := &MockConn{
				QueryFunc: func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
					return &MockRows{Data: tt.mockRows}, nil
				},
			}
			s := NewStatLineStore(mockConn)
			got, err := s.LoadPlayerStats(context.Background())
			if err != nil {
				t.Fatalf("LoadPlayerStats() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadPlayerStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	// A valid UUID passes through in canonical form.
	if got := NormalizeID("6BA7B810-9DAD-11D1-80B4-00C04FD430C8"); got != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Errorf("NormalizeID(uuid) = %s", got)
	}

	// Arbitrary ids map deterministically.
	a := NormalizeID("lakers-2024-01-15")
	b := NormalizeID("lakers-2024-01-15")
	c := NormalizeID("celtics-2024-01-15")
	if a != b {
		t.Error("NormalizeID must be deterministic")
	}
	if a == c {
		t.Error("distinct ids must not collide")
	}
}
