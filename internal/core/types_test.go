package core

import (
	"math"
	"testing"
	"time"
)

func TestMarketData_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		data    MarketData
		wantErr bool
	}{
		{
			name:    "valid record",
			data:    MarketData{Symbol: "NIFTY", Price: 19850.5, Timestamp: now},
			wantErr: false,
		},
		{
			name:    "missing symbol",
			data:    MarketData{Price: 100, Timestamp: now},
			wantErr: true,
		},
		{
			name:    "missing price",
			data:    MarketData{Symbol: "NIFTY", Timestamp: now},
			wantErr: true,
		},
		{
			name:    "negative price",
			data:    MarketData{Symbol: "NIFTY", Price: -5, Timestamp: now},
			wantErr: true,
		},
		{
			name:    "NaN price",
			data:    MarketData{Symbol: "NIFTY", Price: math.NaN(), Timestamp: now},
			wantErr: true,
		},
		{
			name:    "infinite price",
			data:    MarketData{Symbol: "NIFTY", Price: math.Inf(1), Timestamp: now},
			wantErr: true,
		},
		{
			name:    "missing timestamp",
			data:    MarketData{Symbol: "NIFTY", Price: 100},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil {
				var coreErr *Error
				if !asError(err, &coreErr) || coreErr.Code != ErrInvalidRecord.Code {
					t.Errorf("expected INVALID_RECORD, got %v", err)
				}
			}
		})
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}

func TestSignalSet_Mean(t *testing.T) {
	s := SignalSet{"a": 0.5, "b": -0.5, "c": 0.3}
	want := 0.3 / 3
	if got := s.Mean(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Mean() = %v, want %v", got, want)
	}

	if got := (SignalSet{}).Mean(); got != 0 {
		t.Errorf("empty Mean() = %v, want 0", got)
	}
}

func TestSignalSet_Variance(t *testing.T) {
	// All identical scores have zero variance.
	s := SignalSet{"a": 0.4, "b": 0.4, "c": 0.4}
	if got := s.Variance(); got != 0 {
		t.Errorf("Variance() = %v, want 0", got)
	}

	// Population variance of {1, -1} is 1.
	s = SignalSet{"a": 1, "b": -1}
	if got := s.Variance(); math.Abs(got-1) > 1e-9 {
		t.Errorf("Variance() = %v, want 1", got)
	}
}

func TestSignalSet_Confidence(t *testing.T) {
	// Empty set yields zero confidence.
	if got := (SignalSet{}).Confidence(); got != 0 {
		t.Errorf("empty Confidence() = %v, want 0", got)
	}

	// Perfect agreement yields full confidence.
	s := SignalSet{"a": 0.6, "b": 0.6}
	if got := s.Confidence(); math.Abs(got-1) > 1e-9 {
		t.Errorf("agreement Confidence() = %v, want 1", got)
	}

	// Maximal disagreement floors at zero.
	s = SignalSet{"a": 1, "b": -1}
	if got := s.Confidence(); got != 0 {
		t.Errorf("disagreement Confidence() = %v, want 0", got)
	}

	// Confidence always stays within [0, 1].
	s = SignalSet{"a": 0.9, "b": -0.3, "c": 0.1}
	got := s.Confidence()
	if got < 0 || got > 1 {
		t.Errorf("Confidence() = %v, out of [0,1]", got)
	}
}

func TestClampSignal(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 1},
		{-3, -1},
		{0.7, 0.7},
		{-0.2, -0.2},
		{1, 1},
		{-1, -1},
	}

	for _, tt := range tests {
		if got := ClampSignal(tt.in); got != tt.want {
			t.Errorf("ClampSignal(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMarketData_DataQuality(t *testing.T) {
	m := MarketData{Meta: map[string]any{"data_quality": 0.75}}
	if got := m.DataQuality(); got != 0.75 {
		t.Errorf("DataQuality() = %v, want 0.75", got)
	}

	// Absent quality defaults to 1.
	if got := (MarketData{}).DataQuality(); got != 1.0 {
		t.Errorf("default DataQuality() = %v, want 1", got)
	}
}
