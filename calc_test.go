package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lisp-calc/parser"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		In  string
		Out int64
	}{
		{
			In:  `5`,
			Out: 5,
		},
		{
			In:  `(+ 1 2)`,
			Out: 3,
		},
		{
			In:  `(- 7 4)`,
			Out: 3,
		},
		{
			In:  `(* 6 7)`,
			Out: 42,
		},
		{
			In:  `(/ 26 2)`,
			Out: 13,
		},
		{
			In:  `(* (- 7 4) (+ (/ 26 2) 1))`,
			Out: 42,
		},
		{
			// division truncates toward zero
			In:  `(/ 7 2)`,
			Out: 3,
		},
		{
			In:  `(/ (- 0 7) 2)`,
			Out: -3,
		},
		{
			In:  `(- 1 2)`,
			Out: -1,
		},
		{
			In:  "(+\n\t(* 2 3)\n\t(/ 9 3)\n)",
			Out: 9,
		},
		{
			In:  `   (+ 0 0)   `,
			Out: 0,
		},
	}

	for i := range testCases {
		result, err := Evaluate(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, result, "case %d: %q", i, testCases[i].In)
	}
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{
			In:  `(/ 5 0)`,
			Err: ErrDivisionByZero,
		},
		{
			In:  `(+ (/ 1 (- 2 2)) 3)`,
			Err: ErrDivisionByZero,
		},
		{
			In:  ``,
			Err: parser.ErrUnexpectedEOF,
		},
		{
			In:  " \t\n ",
			Err: parser.ErrUnexpectedEOF,
		},
		{
			In:  `(+ 1 2`,
			Err: parser.ErrUnexpectedEOF,
		},
		{
			In:  `(+ 1 2) (+ 3 4)`,
			Err: parser.ErrTrailingInput,
		},
		{
			In:  `(+ 1 2) 3`,
			Err: parser.ErrTrailingInput,
		},
		{
			In:  `(+ 1 a)`,
			Err: parser.ErrInvalidToken,
		},
		{
			In:  `(1 2 3)`,
			Err: parser.ErrUnexpectedToken,
		},
		{
			In:  `9223372036854775808`,
			Err: parser.ErrBadNumber,
		},
	}

	for i := range testCases {
		result, err := Evaluate(testCases[i].In)

		assert.Equal(t, int64(0), result)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, testCases[i].Err), "case %d: %v", i, err)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	{
		first, err := Evaluate(`(* (- 7 4) (+ (/ 26 2) 1))`)
		assert.NoError(t, err)

		second, err := Evaluate(`(* (- 7 4) (+ (/ 26 2) 1))`)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	}

	{
		_, first := Evaluate(`(/ 5 0)`)
		_, second := Evaluate(`(/ 5 0)`)

		assert.True(t, errors.Is(first, ErrDivisionByZero))
		assert.True(t, errors.Is(second, ErrDivisionByZero))
	}
}

func TestOverflowWrapsAround(t *testing.T) {
	testCases := []struct {
		In  string
		Out int64
	}{
		{
			In:  `(+ 9223372036854775807 1)`,
			Out: math.MinInt64,
		},
		{
			In:  `(* 9223372036854775807 2)`,
			Out: -2,
		},
	}

	for i := range testCases {
		result, err := Evaluate(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, result)
	}
}
