package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deals-bot/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "API key",
			input:  []byte(`{"apiKey":"sk-0123456789","query":"laptop"}`),
			output: []byte(`{"apiKey":"[MASKED]","query":"laptop"}`),
		},
		{
			name:   "Email",
			input:  []byte(`{"profile": {"email": "john@doe.com"}, "query": "shoes"}`),
			output: []byte(`{"profile": {"email": "[MASKED]"}, "query": "shoes"}`),
		},
		{
			name:   "Nothing sensitive",
			input:  []byte(`{"query":"laptop","sort_by":"best"}`),
			output: []byte(`{"query":"laptop","sort_by":"best"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
