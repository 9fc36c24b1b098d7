package casecode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefitCode(t *testing.T) {
	tests := []struct {
		benefitType string
		want        string
	}{
		{"PIP", "002"},
		{"ESA", "051"},
		{"UC", "001"},
		{"DLA", "037"},
		{"carersAllowance", "070"},
		{"attendanceAllowance", "023"},
	}

	for _, tc := range tests {
		t.Run(tc.benefitType, func(t *testing.T) {
			code, err := BenefitCode(tc.benefitType)
			require.NoError(t, err)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestBenefitCodeUnknownType(t *testing.T) {
	_, err := BenefitCode("freeBusPass")

	var mappingErr *MappingError
	require.True(t, errors.As(err, &mappingErr))
	assert.Equal(t, "freeBusPass", mappingErr.BenefitType)
}

func TestCaseCodeIsPlainConcatenation(t *testing.T) {
	for benefitType := range benefitCodes {
		code, err := BenefitCode(benefitType)
		require.NoError(t, err)
		assert.Equal(t, code+IssueCode, CaseCode(code, IssueCode))
	}
}

func TestCaseCodeEmptyParts(t *testing.T) {
	assert.Empty(t, CaseCode("", IssueCode))
	assert.Empty(t, CaseCode("002", ""))
}
