package errors

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"
)

func TestMonteCarloError_Error(t *testing.T) {
	type fields struct {
		Err   string
		Code  int32
		Inner error
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name:   "oh no!",
			fields: fields{Err: "oh no!", Code: Validation},
			want:   "oh no!",
		},
		{
			name:   "with inner",
			fields: fields{Err: "weight must be a number", Code: Type, Inner: New("bad float")},
			want:   "weight must be a number: bad float",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := MonteCarloError{
				Err:   tt.fields.Err,
				Code:  tt.fields.Code,
				Inner: tt.fields.Inner,
			}
			if got := e.Error(); got != tt.want {
				t.Errorf("MonteCarloError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewMonteCarloError(t *testing.T) {
	inner := New("inner")
	type args struct {
		text  string
		code  int32
		inner error
	}
	tests := []struct {
		name string
		args args
		want *MonteCarloError
	}{
		{
			name: "lookup",
			args: args{text: "no face 7", code: Lookup},
			want: &MonteCarloError{Err: "no face 7", Code: Lookup},
		},
		{
			name: "type with inner",
			args: args{text: "bad weight", code: Type, inner: inner},
			want: &MonteCarloError{Err: "bad weight", Code: Type, Inner: inner},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMonteCarloError(tt.args.text, tt.args.code, tt.args.inner); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewMonteCarloError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	_, parseErr := strconv.ParseFloat("abc", 64)
	tests := []struct {
		name string
		err  error
		want int32
	}{
		{name: "validation", err: NewValidationError("faces must be unique"), want: Validation},
		{name: "lookup", err: NewLookupError("no face %d", 7), want: Lookup},
		{name: "type", err: NewTypeError(parseErr, "weight must be a number"), want: Type},
		{name: "state", err: NewStateError("nothing played"), want: State},
		{name: "wrapped", err: fmt.Errorf("die 2: %w", NewLookupError("no face")), want: Lookup},
		{name: "plain", err: New("plain"), want: Unexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	err := fmt.Errorf("play: %w", NewStateError("nothing played"))
	if !IsState(err) {
		t.Errorf("IsState(%v) = false, want true", err)
	}
	if IsValidation(err) || IsLookup(err) || IsType(err) {
		t.Errorf("%v matched more than one code", err)
	}
	if IsValidation(nil) {
		t.Errorf("IsValidation(nil) = true, want false")
	}
}
