package jsonlogic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rulekit/jsonlogic"
	"github.com/rulekit/jsonlogic/internal/suite"
)

// The corpus in testdata follows the community test format; every triple
// must evaluate exactly to its expectation.
func TestConformanceCorpus(t *testing.T) {
	cases, err := suite.LoadFile("testdata/tests.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	report := suite.Run(jsonlogic.New(), cases)
	for _, res := range report.Results {
		if res.Passed {
			continue
		}
		rule, _ := json.Marshal(res.Rule)
		data, _ := json.Marshal(res.Data)
		want, _ := json.Marshal(res.Expected)
		if res.Err != nil {
			t.Errorf("case %d (%s): apply(%s, %s) errored: %v", res.Index, res.Section, rule, data, res.Err)
			continue
		}
		got, _ := json.Marshal(res.Got)
		t.Errorf("case %d (%s): apply(%s, %s) = %s, want %s\n%s", res.Index, res.Section, rule, data, got, want, res.Diff)
	}
	require.Equal(t, len(cases), report.Passed, "failed %d of %d cases", report.Failed, len(cases))
}
